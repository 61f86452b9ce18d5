package slot

import (
	"clicker_backend/internal/repository"
	"clicker_backend/internal/service"
)

type serv struct {
	players   *service.Players
	statsRepo repository.SlotStatsRepository
}

func NewSlotService(players *service.Players, statsRepo repository.SlotStatsRepository) service.SlotService {
	return &serv{
		players:   players,
		statsRepo: statsRepo,
	}
}
