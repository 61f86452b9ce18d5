package economy

import (
	"math"

	"clicker_backend/internal/model"
)

// IdleRate золото в секунду с учётом бонусов
func (e *Engine) IdleRate(data *model.PlayerData) float64 {
	eff := e.Effects(data)
	return eff.IdleIncome * e.PrestigeBonus(data) * e.goldBoost(data, eff)
}

// CollectIdle начисляет доход с момента прошлого сбора, не больше MaxOfflineHours
func (e *Engine) CollectIdle(data *model.PlayerData) model.IdleCollect {
	now := e.clock.Now().Unix()
	last := data.LastSeenAt
	data.LastSeenAt = now
	if last <= 0 || now <= last {
		return model.IdleCollect{Balance: data.Gold}
	}

	seconds := math.Min(float64(now-last), e.cfg.MaxOfflineHours*3600)
	rate := e.IdleRate(data)
	gold := rate * seconds
	AddGold(data, gold)

	return model.IdleCollect{
		Seconds: seconds,
		Rate:    rate,
		Gold:    gold,
		Balance: data.Gold,
	}
}
