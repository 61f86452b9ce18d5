package economy

import (
	"time"

	"clicker_backend/internal/model"
)

// NextStreak серия после входа в день today.
// Вчера - продолжение серии, повторный вход в тот же день - ошибка, иначе сброс
func NextStreak(lastDate, today string, streak int) (int, error) {
	if lastDate == today {
		return 0, model.ErrAlreadyClaimed
	}
	last, err := time.Parse(dateLayout, lastDate)
	if err != nil {
		return 1, nil
	}
	now, err := time.Parse(dateLayout, today)
	if err != nil {
		return 1, nil
	}

	days := int(now.Sub(last).Hours() / 24)
	switch {
	case days <= 0:
		// часы ушли назад, награду за этот день уже забрали
		return 0, model.ErrAlreadyClaimed
	case days == 1:
		return min(max(streak, 0)+1, model.MaxLoginStreak), nil
	default:
		return 1, nil
	}
}

// ClaimDailyLogin выдаёт награду за первый вход дня
func (e *Engine) ClaimDailyLogin(data *model.PlayerData) (model.DailyLoginReward, error) {
	today := e.today()
	streak, err := NextStreak(data.LastLoginDate, today, data.LoginStreak)
	if err != nil {
		return model.DailyLoginReward{}, err
	}

	mult := e.cfg.LoginMultipliers[streak-1]
	gold := e.cfg.DailyLoginBaseGold * mult
	var chips int64
	if streak == model.MaxLoginStreak {
		chips = e.cfg.DailyLoginDay7Chips
	}

	grantGold(data, gold)
	data.Chips += chips
	data.LastLoginDate = today
	data.LoginStreak = streak

	return model.DailyLoginReward{
		Date:       today,
		Streak:     streak,
		Multiplier: mult,
		Gold:       gold,
		Chips:      chips,
		Balance:    data.Gold,
	}, nil
}
