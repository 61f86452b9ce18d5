package model

// SlotOutcome категория исхода слота
type SlotOutcome string

const (
	OutcomeLoss        SlotOutcome = "loss"
	OutcomeDraw        SlotOutcome = "draw"
	OutcomeMini        SlotOutcome = "mini"
	OutcomeSmall       SlotOutcome = "small"
	OutcomeBig         SlotOutcome = "big"
	OutcomeJackpot     SlotOutcome = "jackpot"
	OutcomeMegaJackpot SlotOutcome = "mega_jackpot"
)

type SlotSpin struct {
	Bet float64
}

// SlotResult результат спина
type SlotResult struct {
	Outcome    SlotOutcome
	Reels      [3]string
	Bet        float64
	Multiplier float64
	Payout     float64
	Gold       float64
}

// SlotOdds нормализованная вероятность категории (в процентах)
type SlotOdds struct {
	Outcome    SlotOutcome
	Percent    float64
	Multiplier float64
}

// SlotStats агрегированная статистика слота по серверу
type SlotStats struct {
	TotalSpins  int
	TotalBet    float64
	TotalPayout float64
	CurrentRTP  float64
	TargetRTP   float64 // Теоретический RTP таблицы без удачи
	WindowRTP   float64
	WindowSize  int
	Drifting    bool // RTP окна далеко от теоретического
	Outcomes    map[SlotOutcome]int
}
