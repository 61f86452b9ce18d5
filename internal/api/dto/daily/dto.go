package daily

type LoginResponse struct {
	Date       string  `json:"date"`
	Streak     int     `json:"streak"`
	Multiplier float64 `json:"multiplier"`
	Gold       float64 `json:"gold"`
	Chips      int64   `json:"chips"`
	Balance    float64 `json:"balance"`
}

type Quest struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Kind        string  `json:"kind"`
	Target      float64 `json:"target"`
	Progress    float64 `json:"progress"`
	RewardGold  float64 `json:"reward_gold"`
	RewardChips int64   `json:"reward_chips"`
	Complete    bool    `json:"complete"`
	Claimed     bool    `json:"claimed"`
}

type ClaimRequest struct {
	ID string `json:"id"`
}

type ClaimResponse struct {
	QuestID     string  `json:"quest_id"`
	RewardGold  float64 `json:"reward_gold"`
	RewardChips int64   `json:"reward_chips"`
	Gold        float64 `json:"gold"`
	Chips       int64   `json:"chips"`
}
