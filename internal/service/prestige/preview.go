package prestige

import (
	"context"

	"clicker_backend/internal/model"
)

func (s *serv) Preview(ctx context.Context, userID int) (*model.PrestigePreview, error) {
	data, err := s.players.Read(ctx, userID)
	if err != nil {
		return nil, err
	}
	preview := s.players.Engine().PrestigePreview(data)
	return &preview, nil
}
