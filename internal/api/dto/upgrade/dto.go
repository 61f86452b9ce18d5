package upgrade

type BuyRequest struct {
	ID string `json:"id"`
}

type Info struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	EffectType     string  `json:"effect_type"`
	EffectPerLevel float64 `json:"effect_per_level"`
	MaxLevel       int     `json:"max_level"`
	Level          int     `json:"level"`
	NextCost       float64 `json:"next_cost"`
	Effect         float64 `json:"effect"` // Эффект на текущем уровне
	Maxed          bool    `json:"maxed"`
}

type BuyResponse struct {
	ID       string  `json:"id"`
	Level    int     `json:"level"`
	Cost     float64 `json:"cost"`
	NextCost float64 `json:"next_cost"`
	Gold     float64 `json:"gold"`
}
