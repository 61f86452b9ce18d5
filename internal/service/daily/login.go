package daily

import (
	"context"

	"clicker_backend/internal/model"
)

// ClaimLogin награда за первый вход календарного дня
func (s *serv) ClaimLogin(ctx context.Context, userID int) (*model.DailyLoginReward, error) {
	var reward model.DailyLoginReward
	err := s.players.Update(ctx, userID, func(data *model.PlayerData) error {
		var err error
		reward, err = s.players.Engine().ClaimDailyLogin(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &reward, nil
}
