package model

// IdleCollect результат сбора оффлайн дохода
type IdleCollect struct {
	Seconds float64
	Rate    float64
	Gold    float64
	Balance float64
}

// PlayerState снимок игрока для клиента
type PlayerState struct {
	Data          PlayerData
	Effects       Effects
	PrestigeBonus float64
	GoldBoost     float64
	TapPower      float64
}
