package converter

import (
	"clicker_backend/internal/api/dto/player"
	"clicker_backend/internal/model"
)

func ToStateResponse(state model.PlayerState) player.StateResponse {
	d := state.Data
	return player.StateResponse{
		Gold:            d.Gold,
		Chips:           d.Chips,
		TotalClicks:     d.TotalClicks,
		TotalSpins:      d.TotalSpins,
		TotalGoldEarned: d.TotalGoldEarned,
		PrestigeCount:   d.PrestigeCount,
		PrestigeChips:   d.PrestigeChips,
		PrestigeBonus:   state.PrestigeBonus,
		GoldBoost:       state.GoldBoost,
		TapPower:        state.TapPower,
		CurrentBet:      d.CurrentBet,
		LoginStreak:     d.LoginStreak,
		LastLoginDate:   d.LastLoginDate,
		OwnedItems:      d.OwnedItems,
		ActiveBoosts:    d.ActiveBoosts,
		UpgradeLevels:   d.UpgradeLevels,
		Effects:         toEffects(state.Effects),
	}
}

func toEffects(e model.Effects) player.Effects {
	return player.Effects{
		ClickMultiplier: e.ClickMultiplier,
		CritChance:      e.CritChance,
		GoldBoost:       e.GoldBoost,
		SlotLuck:        e.SlotLuck,
		IdleIncome:      e.IdleIncome,
	}
}

func ToIdleResponse(res model.IdleCollect) player.IdleResponse {
	return player.IdleResponse{
		Seconds: res.Seconds,
		Rate:    res.Rate,
		Gold:    res.Gold,
		Balance: res.Balance,
	}
}
