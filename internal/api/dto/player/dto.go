package player

type StateResponse struct {
	Gold            float64          `json:"gold"`
	Chips           int64            `json:"chips"`
	TotalClicks     int64            `json:"total_clicks"`
	TotalSpins      int64            `json:"total_spins"`
	TotalGoldEarned float64          `json:"total_gold_earned"`
	PrestigeCount   int              `json:"prestige_count"`
	PrestigeChips   int64            `json:"prestige_chips"`
	PrestigeBonus   float64          `json:"prestige_bonus"` // Постоянный множитель дохода
	GoldBoost       float64          `json:"gold_boost"`     // Улучшения и активные бусты
	TapPower        float64          `json:"tap_power"`      // Золото за некритический тап
	CurrentBet      float64          `json:"current_bet"`
	LoginStreak     int              `json:"login_streak"`
	LastLoginDate   string           `json:"last_login_date"`
	OwnedItems      []string         `json:"owned_items"`
	ActiveBoosts    map[string]int64 `json:"active_boosts"` // ID буста -> unix время окончания
	UpgradeLevels   map[string]int   `json:"upgrade_levels"`
	Effects         Effects          `json:"effects"`
}

type Effects struct {
	ClickMultiplier float64 `json:"click_multiplier"`
	CritChance      float64 `json:"crit_chance"`
	GoldBoost       float64 `json:"gold_boost"`
	SlotLuck        float64 `json:"slot_luck"`
	IdleIncome      float64 `json:"idle_income"` // Золото в секунду
}

type BetRequest struct {
	Bet float64 `json:"bet"`
}

type BetResponse struct {
	Bet float64 `json:"bet"` // Ставка после ограничения min/max
}

type IdleResponse struct {
	Seconds float64 `json:"seconds"`
	Rate    float64 `json:"rate"`
	Gold    float64 `json:"gold"`
	Balance float64 `json:"balance"`
}
