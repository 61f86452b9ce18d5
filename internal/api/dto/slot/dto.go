package slot

type SpinRequest struct {
	Bet float64 `json:"bet"` // 0 - текущая ставка игрока
}

type SpinResponse struct {
	Outcome    string    `json:"outcome"`
	Reels      [3]string `json:"reels"`
	Bet        float64   `json:"bet"`
	Multiplier float64   `json:"multiplier"`
	Payout     float64   `json:"payout"`
	Gold       float64   `json:"gold"` // Баланс после
}

type OddsEntry struct {
	Outcome    string  `json:"outcome"`
	Percent    float64 `json:"percent"`
	Multiplier float64 `json:"multiplier"`
}

type StatsResponse struct {
	TotalSpins  int            `json:"total_spins"`
	TotalBet    float64        `json:"total_bet"`
	TotalPayout float64        `json:"total_payout"`
	CurrentRTP  float64        `json:"current_rtp"`
	TargetRTP   float64        `json:"target_rtp"`
	WindowRTP   float64        `json:"window_rtp"`
	WindowSize  int            `json:"window_size"`
	Drifting    bool           `json:"drifting"`
	Outcomes    map[string]int `json:"outcomes"`
}
