package economy

import (
	"math"

	"clicker_backend/internal/model"
)

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AddGold начисляет заработанное золото. Неположительные суммы игнорируются
func AddGold(data *model.PlayerData, amount float64) {
	if !(amount > 0) || !validAmount(amount) {
		return
	}
	data.Gold += amount
	addEarned(data, amount)
}

// addEarned учитывает заработок в статистике и квестах
func addEarned(data *model.PlayerData, amount float64) {
	data.TotalGoldEarned += amount
	TrackQuest(data, model.QuestEarnGold, amount)
}

// grantGold награда (вход, квест): в общий заработок идёт, квесты не двигает
func grantGold(data *model.PlayerData, amount float64) {
	if !(amount > 0) || !validAmount(amount) {
		return
	}
	data.Gold += amount
	data.TotalGoldEarned += amount
}

// SpendGold списывает золото, баланс не уходит в минус
func SpendGold(data *model.PlayerData, amount float64) error {
	if amount < 0 || !validAmount(amount) {
		return model.ErrInvalidAmount
	}
	if data.Gold < amount {
		return model.ErrInsufficientGold
	}
	data.Gold -= amount
	return nil
}

// ClampBet приводит ставку в [MinBet, min(MaxBet, gold)]
func ClampBet(cfg model.GameConfig, bet, gold float64) float64 {
	if !validAmount(bet) {
		return cfg.MinBet
	}
	upper := math.Min(cfg.MaxBet, gold)
	if upper < cfg.MinBet {
		return cfg.MinBet
	}
	return math.Max(cfg.MinBet, math.Min(bet, upper))
}

// SetBet сохраняет ставку игрока после ограничения
func (e *Engine) SetBet(data *model.PlayerData, bet float64) float64 {
	data.CurrentBet = ClampBet(e.cfg, bet, data.Gold)
	return data.CurrentBet
}
