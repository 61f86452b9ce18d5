package economy

import (
	"math"

	"clicker_backend/internal/model"
)

// TapPower выплата за один обычный тап
func (e *Engine) TapPower(data *model.PlayerData) float64 {
	return e.tapPower(data, e.Effects(data))
}

func (e *Engine) tapPower(data *model.PlayerData, eff model.Effects) float64 {
	return e.cfg.BaseClickPower * eff.ClickMultiplier * e.PrestigeBonus(data) * e.goldBoost(data, eff)
}

// CritChance шанс крита с ограничением сверху
func (e *Engine) CritChance(eff model.Effects) float64 {
	return math.Min(e.cfg.BaseCritChance+eff.CritChance, e.cfg.MaxCritChance)
}

// Click обрабатывает пачку тапов, каждый крит бросается отдельно
func (e *Engine) Click(data *model.PlayerData, count int) (model.ClickResult, error) {
	if count <= 0 || count > e.cfg.MaxTapsPerRequest {
		return model.ClickResult{}, model.ErrInvalidAmount
	}

	eff := e.Effects(data)
	power := e.tapPower(data, eff)
	crit := e.CritChance(eff)

	var total float64
	crits := 0
	for range count {
		payout := power
		if e.rng.Float64() < crit {
			payout *= e.cfg.CritMultiplier
			crits++
		}
		total += payout
	}

	data.TotalClicks += int64(count)
	TrackQuest(data, model.QuestClicks, float64(count))
	AddGold(data, total)

	return model.ClickResult{
		Taps:     count,
		Crits:    crits,
		Payout:   total,
		Gold:     data.Gold,
		TapPower: power,
		CritRate: crit,
	}, nil
}
