package slot

import (
	"context"

	"clicker_backend/internal/model"
)

// Odds таблица исходов с учётом удачи игрока
func (s *serv) Odds(ctx context.Context, userID int) ([]model.SlotOdds, error) {
	data, err := s.players.Read(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.players.Engine().Odds(data), nil
}

func (s *serv) Stats() model.SlotStats {
	return s.statsRepo.Stats()
}
