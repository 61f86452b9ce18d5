package prestige

import (
	"context"
	"log"

	"clicker_backend/internal/model"
)

// Prestige обменивает прогресс на фишки
func (s *serv) Prestige(ctx context.Context, userID int) (*model.PrestigeResult, error) {
	var res model.PrestigeResult
	err := s.players.Update(ctx, userID, func(data *model.PlayerData) error {
		var err error
		res, err = s.players.Engine().Prestige(data)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Printf("user %d prestiged #%d: +%d chips, bonus x%.2f", userID, res.PrestigeCount, res.ChipsAwarded, res.Bonus)
	return &res, nil
}
