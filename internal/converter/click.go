package converter

import (
	"clicker_backend/internal/api/dto/click"
	"clicker_backend/internal/model"
)

func ToTap(req click.TapRequest) model.Tap {
	return model.Tap{Count: req.Count}
}

func ToTapResponse(res model.ClickResult) click.TapResponse {
	return click.TapResponse{
		Taps:     res.Taps,
		Crits:    res.Crits,
		Payout:   res.Payout,
		Gold:     res.Gold,
		TapPower: res.TapPower,
		CritRate: res.CritRate,
	}
}
