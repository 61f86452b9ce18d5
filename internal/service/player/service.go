package player

import (
	"clicker_backend/internal/service"
)

type serv struct {
	players *service.Players
}

func NewPlayerService(players *service.Players) service.PlayerService {
	return &serv{players: players}
}
