package upgrade

import (
	"clicker_backend/internal/service"
)

type serv struct {
	players *service.Players
}

func NewUpgradeService(players *service.Players) service.UpgradeService {
	return &serv{players: players}
}
