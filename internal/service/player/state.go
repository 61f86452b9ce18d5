package player

import (
	"context"
	"fmt"

	"clicker_backend/internal/model"
)

// State снимок игрока с посчитанными множителями
func (s *serv) State(ctx context.Context, userID int) (*model.PlayerState, error) {
	data, err := s.players.Read(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}

	state := s.players.Engine().State(data)
	return &state, nil
}
