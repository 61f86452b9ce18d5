package daily

import (
	"context"

	"clicker_backend/internal/model"
)

// Quests квесты на сегодня. Новый набор сохраняется сразу
func (s *serv) Quests(ctx context.Context, userID int) ([]model.DailyQuest, error) {
	var quests []model.DailyQuest
	err := s.players.Update(ctx, userID, func(data *model.PlayerData) error {
		quests = append([]model.DailyQuest(nil), data.DailyQuests...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quests, nil
}

// ClaimQuest забирает награду за выполненный квест
func (s *serv) ClaimQuest(ctx context.Context, userID int, questID string) (*model.QuestClaim, error) {
	var claim model.QuestClaim
	err := s.players.Update(ctx, userID, func(data *model.PlayerData) error {
		var err error
		claim, err = s.players.Engine().ClaimQuest(data, questID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &claim, nil
}
