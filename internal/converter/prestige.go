package converter

import (
	"clicker_backend/internal/api/dto/prestige"
	"clicker_backend/internal/model"
)

func ToPreviewResponse(p model.PrestigePreview) prestige.PreviewResponse {
	return prestige.PreviewResponse{
		TotalGoldEarned: p.TotalGoldEarned,
		ChipsAvailable:  p.ChipsAvailable,
		CurrentBonus:    p.CurrentBonus,
		BonusAfter:      p.BonusAfter,
		Ready:           p.Ready,
	}
}

func ToResetResponse(res model.PrestigeResult) prestige.ResetResponse {
	return prestige.ResetResponse{
		ChipsAwarded:  res.ChipsAwarded,
		Chips:         res.Chips,
		PrestigeCount: res.PrestigeCount,
		Bonus:         res.Bonus,
		Gold:          res.Gold,
	}
}
