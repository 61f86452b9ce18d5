package player

import (
	"context"

	"clicker_backend/internal/model"
)

// CollectIdle начисляет оффлайн доход
func (s *serv) CollectIdle(ctx context.Context, userID int) (*model.IdleCollect, error) {
	var res model.IdleCollect
	err := s.players.Update(ctx, userID, func(data *model.PlayerData) error {
		res = s.players.Engine().CollectIdle(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
