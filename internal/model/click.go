package model

type Tap struct {
	Count int
}

// ClickResult результат одного или нескольких тапов
type ClickResult struct {
	Taps     int
	Crits    int
	Payout   float64
	Gold     float64
	TapPower float64 // Выплата одного некритического тапа
	CritRate float64
}
