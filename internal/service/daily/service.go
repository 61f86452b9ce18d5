package daily

import (
	"clicker_backend/internal/service"
)

type serv struct {
	players *service.Players
}

func NewDailyService(players *service.Players) service.DailyService {
	return &serv{players: players}
}
