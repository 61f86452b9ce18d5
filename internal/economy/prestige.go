package economy

import (
	"math"

	"clicker_backend/internal/model"
)

const (
	prestigeFormulaFrom = 500_000
	prestigeMinChips    = 3
)

// ниже prestigeFormulaFrom фишки берутся из таблицы, по убыванию порога
var prestigeMilestones = []struct {
	earned float64
	chips  int64
}{
	{earned: 250_000, chips: 2},
	{earned: 100_000, chips: 1},
}

// PrestigeChips сколько фишек положено за весь заработок
func PrestigeChips(earned float64) int64 {
	if math.IsNaN(earned) || earned <= 0 {
		return 0
	}
	if earned < prestigeFormulaFrom {
		for _, m := range prestigeMilestones {
			if earned >= m.earned {
				return m.chips
			}
		}
		return 0
	}
	if math.IsInf(earned, 1) {
		earned = math.MaxFloat64
	}
	chips := int64(math.Floor((math.Log10(earned)-5)*1.5)) + 1
	return max(chips, prestigeMinChips)
}

// PrestigeBonus постоянный множитель от всех полученных за престиж фишек
func (e *Engine) PrestigeBonus(data *model.PlayerData) float64 {
	return 1 + e.cfg.PrestigeBonusPerChip*float64(data.PrestigeChips)
}

func (e *Engine) prestigeAward(data *model.PlayerData) int64 {
	return max(PrestigeChips(data.TotalGoldEarned)-data.PrestigeChips, 0)
}

func (e *Engine) PrestigePreview(data *model.PlayerData) model.PrestigePreview {
	award := e.prestigeAward(data)
	return model.PrestigePreview{
		TotalGoldEarned: data.TotalGoldEarned,
		ChipsAvailable:  award,
		CurrentBonus:    e.PrestigeBonus(data),
		BonusAfter:      1 + e.cfg.PrestigeBonusPerChip*float64(data.PrestigeChips+award),
		Ready:           award >= 1,
	}
}

// Prestige сбрасывает золото и улучшения в обмен на фишки
func (e *Engine) Prestige(data *model.PlayerData) (model.PrestigeResult, error) {
	award := e.prestigeAward(data)
	if award < 1 {
		return model.PrestigeResult{}, model.ErrPrestigeNotReady
	}

	data.Chips += award
	data.PrestigeChips += award
	data.PrestigeCount++
	data.Gold = e.cfg.PrestigeResetGold
	data.UpgradeLevels = map[string]int{}
	data.SetCachedEffects(nil)
	data.CurrentBet = e.cfg.MinBet
	data.LastSeenAt = e.clock.Now().Unix()

	return model.PrestigeResult{
		ChipsAwarded:  award,
		Chips:         data.Chips,
		PrestigeCount: data.PrestigeCount,
		Bonus:         e.PrestigeBonus(data),
		Gold:          data.Gold,
	}, nil
}
