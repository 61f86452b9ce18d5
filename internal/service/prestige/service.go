package prestige

import (
	"clicker_backend/internal/service"
)

type serv struct {
	players *service.Players
}

func NewPrestigeService(players *service.Players) service.PrestigeService {
	return &serv{players: players}
}
