package slot_stats_repo

import (
	"sync"
	"testing"

	"clicker_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestTargetRTP(t *testing.T) {
	odds := []model.SlotOdds{
		{Outcome: model.OutcomeLoss, Percent: 50, Multiplier: 0},
		{Outcome: model.OutcomeDraw, Percent: 30, Multiplier: 1},
		{Outcome: model.OutcomeBig, Percent: 20, Multiplier: 2},
	}
	assert.InDelta(t, 70.0, TargetRTP(odds), 1e-9)
}

func TestStatsRepo_Record(t *testing.T) {
	r := NewSlotStatsRepository(100)

	r.Record(model.OutcomeLoss, 10, 0)
	r.Record(model.OutcomeJackpot, 10, 500)

	st := r.Stats()
	assert.Equal(t, 2, st.TotalSpins)
	assert.Equal(t, 20.0, st.TotalBet)
	assert.Equal(t, 500.0, st.TotalPayout)
	assert.InDelta(t, 2500.0, st.CurrentRTP, 1e-9)
	assert.InDelta(t, 2500.0, st.WindowRTP, 1e-9)
	assert.Equal(t, 1, st.Outcomes[model.OutcomeJackpot])
	assert.False(t, st.Drifting)
}

func TestStatsRepo_WindowSlides(t *testing.T) {
	r := NewSlotStatsRepository(100)

	for range defaultWindowSize {
		r.Record(model.OutcomeJackpot, 10, 500)
	}
	for range defaultWindowSize {
		r.Record(model.OutcomeDraw, 10, 10)
	}

	st := r.Stats()
	assert.InDelta(t, 100.0, st.WindowRTP, 1e-9)
	assert.Greater(t, st.CurrentRTP, 100.0)
}

func TestStatsRepo_DriftHysteresis(t *testing.T) {
	r := NewSlotStatsRepository(100)

	for range defaultWindowSize {
		r.Record(model.OutcomeLoss, 10, 0)
	}
	assert.True(t, r.Stats().Drifting)

	for range defaultWindowSize {
		r.Record(model.OutcomeDraw, 10, 10)
	}
	assert.False(t, r.Stats().Drifting)
}

func TestStatsRepo_Concurrent(t *testing.T) {
	r := NewSlotStatsRepository(100)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				r.Record(model.OutcomeDraw, 1, 1)
				_ = r.Stats()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, r.Stats().TotalSpins)
}
