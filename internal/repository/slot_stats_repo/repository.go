package slot_stats_repo

import (
	"log"
	"math"
	"sync"

	"clicker_backend/internal/model"
	repoModel "clicker_backend/internal/repository/slot_stats_repo/model"
)

const (
	// defaultWindowSize Размер окна последних спинов
	defaultWindowSize = 500
	// periodSpinsToCheck Периодичность проверки дрейфа (каждые N спинов)
	periodSpinsToCheck = 25
	// driftEnterDeviation относительное отклонение RTP окна, при котором считаем, что слот дрейфует
	driftEnterDeviation = 0.25
	// driftExitDeviation отклонение, при котором дрейф снимается
	driftExitDeviation = 0.10
)

// Реализация репозитория статистики слота в памяти
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.SlotState
}

// NewSlotStatsRepository targetRTP - теоретический RTP в процентах
func NewSlotStatsRepository(targetRTP float64) *StatsRepo {
	return &StatsRepo{
		state: repoModel.SlotState{
			TargetRTP:  targetRTP,
			Outcomes:   make(map[string]int),
			SpinWindow: make([]repoModel.SpinResult, 0, defaultWindowSize),
			WindowSize: defaultWindowSize,
		},
	}
}

// TargetRTP теоретический RTP таблицы исходов в процентах
func TargetRTP(odds []model.SlotOdds) float64 {
	var rtp float64
	for _, o := range odds {
		rtp += o.Percent * o.Multiplier
	}
	return rtp
}

// Record Обновление статистики после спина
func (r *StatsRepo) Record(outcome model.SlotOutcome, bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = r.state.TotalPayout / r.state.TotalBet * 100
	}
	r.state.Outcomes[string(outcome)]++

	// Добавляем спин в окно, поддерживаем размер
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{Bet: bet, Payout: payout})
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	var windowBet, windowPayout float64
	for _, spin := range r.state.SpinWindow {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}
	if windowBet > 0 {
		r.state.WindowRTP = windowPayout / windowBet * 100
	} else {
		r.state.WindowRTP = 0
	}

	if r.state.TotalSpins%periodSpinsToCheck == 0 {
		r.checkDrift()
	}
}

// checkDrift включает флаг дрейфа с гистерезисом. Вызывается под блокировкой
func (r *StatsRepo) checkDrift() {
	if r.state.TargetRTP <= 0 || len(r.state.SpinWindow) < r.state.WindowSize {
		return
	}
	deviation := math.Abs(r.state.WindowRTP-r.state.TargetRTP) / r.state.TargetRTP

	if !r.state.Drifting && deviation > driftEnterDeviation {
		r.state.Drifting = true
		log.Printf("WARN: slot RTP drift: window %.1f%%, target %.1f%%", r.state.WindowRTP, r.state.TargetRTP)
		return
	}
	if r.state.Drifting && deviation < driftExitDeviation {
		r.state.Drifting = false
		log.Printf("slot RTP back to normal: window %.1f%%", r.state.WindowRTP)
	}
}

// Stats Возвращает копию статистики
func (r *StatsRepo) Stats() model.SlotStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	outcomes := make(map[model.SlotOutcome]int, len(r.state.Outcomes))
	for k, v := range r.state.Outcomes {
		outcomes[model.SlotOutcome(k)] = v
	}

	return model.SlotStats{
		TotalSpins:  r.state.TotalSpins,
		TotalBet:    r.state.TotalBet,
		TotalPayout: r.state.TotalPayout,
		CurrentRTP:  r.state.CurrentRTP,
		TargetRTP:   r.state.TargetRTP,
		WindowRTP:   r.state.WindowRTP,
		WindowSize:  r.state.WindowSize,
		Drifting:    r.state.Drifting,
		Outcomes:    outcomes,
	}
}
