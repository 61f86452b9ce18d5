package prestige

type PreviewResponse struct {
	TotalGoldEarned float64 `json:"total_gold_earned"`
	ChipsAvailable  int64   `json:"chips_available"`
	CurrentBonus    float64 `json:"current_bonus"`
	BonusAfter      float64 `json:"bonus_after"`
	Ready           bool    `json:"ready"`
}

type ResetResponse struct {
	ChipsAwarded  int64   `json:"chips_awarded"`
	Chips         int64   `json:"chips"`
	PrestigeCount int     `json:"prestige_count"`
	Bonus         float64 `json:"bonus"`
	Gold          float64 `json:"gold"`
}
