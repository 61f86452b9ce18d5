package converter

import (
	"clicker_backend/internal/api/dto/daily"
	"clicker_backend/internal/model"
)

func ToLoginResponse(res model.DailyLoginReward) daily.LoginResponse {
	return daily.LoginResponse{
		Date:       res.Date,
		Streak:     res.Streak,
		Multiplier: res.Multiplier,
		Gold:       res.Gold,
		Chips:      res.Chips,
		Balance:    res.Balance,
	}
}

func ToQuests(quests []model.DailyQuest) []daily.Quest {
	result := make([]daily.Quest, len(quests))
	for i, q := range quests {
		result[i] = daily.Quest{
			ID:          q.ID,
			Title:       q.Title,
			Kind:        string(q.Kind),
			Target:      q.Target,
			Progress:    q.Progress,
			RewardGold:  q.RewardGold,
			RewardChips: q.RewardChips,
			Complete:    q.Complete(),
			Claimed:     q.Claimed,
		}
	}
	return result
}

func ToClaimResponse(res model.QuestClaim) daily.ClaimResponse {
	return daily.ClaimResponse{
		QuestID:     res.QuestID,
		RewardGold:  res.RewardGold,
		RewardChips: res.RewardChips,
		Gold:        res.Gold,
		Chips:       res.Chips,
	}
}
