package click

import (
	"context"

	"clicker_backend/internal/model"
)

// Tap обрабатывает пачку тапов одной транзакцией
func (s *serv) Tap(ctx context.Context, userID int, tap model.Tap) (*model.ClickResult, error) {
	var res model.ClickResult
	err := s.players.Update(ctx, userID, func(data *model.PlayerData) error {
		var err error
		res, err = s.players.Engine().Click(data, tap.Count)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
