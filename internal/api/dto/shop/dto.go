package shop

type Item struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Kind            string  `json:"kind"`
	PriceChips      int64   `json:"price_chips"`
	Multiplier      float64 `json:"multiplier,omitempty"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
	Owned           bool    `json:"owned"`
	ExpiresAt       int64   `json:"expires_at,omitempty"` // unix, для активного буста
}

type BuyRequest struct {
	ID string `json:"id"`
}

type BuyResponse struct {
	ItemID    string `json:"item_id"`
	Kind      string `json:"kind"`
	Chips     int64  `json:"chips"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}
