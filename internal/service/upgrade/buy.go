package upgrade

import (
	"context"

	"clicker_backend/internal/model"
)

// Buy покупает следующий уровень улучшения
func (s *serv) Buy(ctx context.Context, userID int, upgradeID string) (*model.UpgradeResult, error) {
	var res model.UpgradeResult
	err := s.players.Update(ctx, userID, func(data *model.PlayerData) error {
		var err error
		res, err = s.players.Engine().BuyUpgrade(data, upgradeID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
