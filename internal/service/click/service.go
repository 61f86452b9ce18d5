package click

import (
	"clicker_backend/internal/service"
)

type serv struct {
	players *service.Players
}

func NewClickService(players *service.Players) service.ClickService {
	return &serv{players: players}
}
