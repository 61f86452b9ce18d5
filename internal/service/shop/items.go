package shop

import (
	"context"

	"clicker_backend/internal/model"
)

// Items каталог магазина с отметками владения
func (s *serv) Items(ctx context.Context, userID int) ([]model.ShopEntry, error) {
	data, err := s.players.Read(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.players.Engine().Shop(data), nil
}
