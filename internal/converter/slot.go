package converter

import (
	"clicker_backend/internal/api/dto/slot"
	"clicker_backend/internal/model"
)

func ToSlotSpin(req slot.SpinRequest) model.SlotSpin {
	return model.SlotSpin{Bet: req.Bet}
}

func ToSpinResponse(res model.SlotResult) slot.SpinResponse {
	return slot.SpinResponse{
		Outcome:    string(res.Outcome),
		Reels:      res.Reels,
		Bet:        res.Bet,
		Multiplier: res.Multiplier,
		Payout:     res.Payout,
		Gold:       res.Gold,
	}
}

func ToOddsResponse(odds []model.SlotOdds) []slot.OddsEntry {
	result := make([]slot.OddsEntry, len(odds))
	for i, o := range odds {
		result[i] = slot.OddsEntry{
			Outcome:    string(o.Outcome),
			Percent:    o.Percent,
			Multiplier: o.Multiplier,
		}
	}
	return result
}

func ToStatsResponse(stats model.SlotStats) slot.StatsResponse {
	outcomes := make(map[string]int, len(stats.Outcomes))
	for k, v := range stats.Outcomes {
		outcomes[string(k)] = v
	}
	return slot.StatsResponse{
		TotalSpins:  stats.TotalSpins,
		TotalBet:    stats.TotalBet,
		TotalPayout: stats.TotalPayout,
		CurrentRTP:  stats.CurrentRTP,
		TargetRTP:   stats.TargetRTP,
		WindowRTP:   stats.WindowRTP,
		WindowSize:  stats.WindowSize,
		Drifting:    stats.Drifting,
		Outcomes:    outcomes,
	}
}
