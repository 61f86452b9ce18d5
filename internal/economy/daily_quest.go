package economy

import (
	"hash/fnv"

	"clicker_backend/internal/model"
)

// questSeed одинаковый для игрока в течение дня
func questSeed(playerKey, date string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(playerKey))
	_, _ = h.Write([]byte{'|'})
	_, _ = h.Write([]byte(date))
	return h.Sum64()
}

// DrawQuests выбирает count шаблонов без повторов
func DrawQuests(templates []model.QuestTemplate, count int, rng RandomSource) []model.DailyQuest {
	count = min(max(count, 0), len(templates))
	idx := make([]int, len(templates))
	for i := range idx {
		idx[i] = i
	}

	quests := make([]model.DailyQuest, 0, count)
	for i := 0; i < count; i++ {
		j := i + intn(rng, len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]

		t := templates[idx[i]]
		quests = append(quests, model.DailyQuest{
			ID:          t.ID,
			Title:       t.Title,
			Kind:        t.Kind,
			Target:      t.Target,
			RewardGold:  t.RewardGold,
			RewardChips: t.RewardChips,
		})
	}
	return quests
}

// RefreshQuests выдаёт квесты на сегодня, если их ещё нет. true - набор обновлён
func (e *Engine) RefreshQuests(data *model.PlayerData, playerKey string) bool {
	today := e.today()
	if data.QuestDate == today {
		return false
	}
	rng := NewSeededRNG(questSeed(playerKey, today))
	data.DailyQuests = DrawQuests(e.cfg.QuestTemplates, e.cfg.DailyQuestCount, rng)
	data.QuestDate = today
	return true
}

// TrackQuest двигает прогресс незабранных квестов данного типа
func TrackQuest(data *model.PlayerData, kind model.QuestKind, amount float64) {
	if !(amount > 0) {
		return
	}
	for i := range data.DailyQuests {
		q := &data.DailyQuests[i]
		if q.Kind != kind || q.Claimed || q.Progress >= q.Target {
			continue
		}
		q.Progress = min(q.Progress+amount, q.Target)
	}
}

// ClaimQuest забирает награду за выполненный квест
func (e *Engine) ClaimQuest(data *model.PlayerData, questID string) (model.QuestClaim, error) {
	for i := range data.DailyQuests {
		q := &data.DailyQuests[i]
		if q.ID != questID {
			continue
		}
		if q.Claimed {
			return model.QuestClaim{}, model.ErrAlreadyClaimed
		}
		if !q.Complete() {
			return model.QuestClaim{}, model.ErrQuestIncomplete
		}

		q.Claimed = true
		grantGold(data, q.RewardGold)
		data.Chips += q.RewardChips

		return model.QuestClaim{
			QuestID:     q.ID,
			RewardGold:  q.RewardGold,
			RewardChips: q.RewardChips,
			Gold:        data.Gold,
			Chips:       data.Chips,
		}, nil
	}
	return model.QuestClaim{}, model.ErrUnknownQuest
}
