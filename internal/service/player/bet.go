package player

import (
	"context"

	"clicker_backend/internal/model"
)

// SetBet запоминает ставку, ограниченную лимитами и балансом
func (s *serv) SetBet(ctx context.Context, userID int, bet float64) (float64, error) {
	var clamped float64
	err := s.players.Update(ctx, userID, func(data *model.PlayerData) error {
		clamped = s.players.Engine().SetBet(data, bet)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return clamped, nil
}
