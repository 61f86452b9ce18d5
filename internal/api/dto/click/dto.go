package click

type TapRequest struct {
	Count int `json:"count"` // Кол-во тапов в пачке, 0 - один тап
}

type TapResponse struct {
	Taps     int     `json:"taps"`
	Crits    int     `json:"crits"`
	Payout   float64 `json:"payout"`
	Gold     float64 `json:"gold"`
	TapPower float64 `json:"tap_power"`
	CritRate float64 `json:"crit_rate"`
}
