package upgrade

import (
	"context"

	"clicker_backend/internal/model"
)

// List каталог с уровнями и ценами игрока
func (s *serv) List(ctx context.Context, userID int) ([]model.UpgradeInfo, error) {
	data, err := s.players.Read(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.players.Engine().Upgrades(data), nil
}
