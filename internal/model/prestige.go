package model

// PrestigePreview что получит игрок при престиже сейчас
type PrestigePreview struct {
	TotalGoldEarned float64
	ChipsAvailable  int64
	CurrentBonus    float64
	BonusAfter      float64
	Ready           bool
}

type PrestigeResult struct {
	ChipsAwarded  int64
	Chips         int64
	PrestigeCount int
	Bonus         float64
	Gold          float64
}
