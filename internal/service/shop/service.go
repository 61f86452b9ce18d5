package shop

import (
	"clicker_backend/internal/service"
)

type serv struct {
	players *service.Players
}

func NewShopService(players *service.Players) service.ShopService {
	return &serv{players: players}
}
