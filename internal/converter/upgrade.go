package converter

import (
	"clicker_backend/internal/api/dto/upgrade"
	"clicker_backend/internal/model"
)

func ToUpgradeList(list []model.UpgradeInfo) []upgrade.Info {
	result := make([]upgrade.Info, len(list))
	for i, u := range list {
		result[i] = upgrade.Info{
			ID:             u.Upgrade.ID,
			Name:           u.Upgrade.Name,
			Category:       string(u.Upgrade.Category),
			EffectType:     string(u.Upgrade.EffectType),
			EffectPerLevel: u.Upgrade.EffectPerLevel,
			MaxLevel:       u.Upgrade.MaxLevel,
			Level:          u.Level,
			NextCost:       u.NextCost,
			Effect:         u.Effect,
			Maxed:          u.Maxed,
		}
	}
	return result
}

func ToUpgradeBuyResponse(res model.UpgradeResult) upgrade.BuyResponse {
	return upgrade.BuyResponse{
		ID:       res.ID,
		Level:    res.Level,
		Cost:     res.Cost,
		NextCost: res.NextCost,
		Gold:     res.Gold,
	}
}
