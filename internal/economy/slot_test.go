package economy

import (
	"math"
	"testing"

	"clicker_backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oddsByOutcome(odds []model.SlotOdds) map[model.SlotOutcome]float64 {
	out := map[model.SlotOutcome]float64{}
	for _, o := range odds {
		out[o.Outcome] = o.Percent
	}
	return out
}

func TestSlotOdds_SumTo100(t *testing.T) {
	cfg := model.DefaultGameConfig()
	for _, luck := range []float64{0, 0.02, 0.5, 1, 10, 1e6, -3, math.NaN()} {
		var sum float64
		for _, o := range SlotOdds(cfg, luck) {
			assert.GreaterOrEqual(t, o.Percent, 0.0)
			sum += o.Percent
		}
		assert.InDelta(t, 100.0, sum, 1e-9, "luck=%v", luck)
	}
}

func TestSlotOdds_LuckShiftsToWins(t *testing.T) {
	cfg := model.DefaultGameConfig()

	base := oddsByOutcome(SlotOdds(cfg, 0))
	assert.InDelta(t, 100*1200.0/1985, base[model.OutcomeLoss], 1e-9)
	assert.InDelta(t, 100.0/1985, base[model.OutcomeMegaJackpot], 1e-9)

	lucky := oddsByOutcome(SlotOdds(cfg, 1))
	assert.Less(t, lucky[model.OutcomeLoss], base[model.OutcomeLoss])
	assert.Less(t, lucky[model.OutcomeDraw], base[model.OutcomeDraw])
	assert.Greater(t, lucky[model.OutcomeJackpot], base[model.OutcomeJackpot])
}

func slotRTP(odds []model.SlotOdds) float64 {
	var rtp float64
	for _, o := range odds {
		rtp += o.Percent * o.Multiplier
	}
	return rtp
}

func TestSlotOdds_DefaultTableKeepsHouseEdge(t *testing.T) {
	cfg := model.DefaultGameConfig()

	base := slotRTP(SlotOdds(cfg, 0))
	assert.Less(t, base, 100.0)
	assert.InDelta(t, 100*1860.0/1985, base, 1e-9)

	// максимальная удача four_leaf окупает ставки
	assert.Greater(t, slotRTP(SlotOdds(cfg, 1)), 100.0)
}

func TestSpin_InvalidBet(t *testing.T) {
	e, _ := newTestEngine(t, constRNG(0.5))
	data := e.NewPlayer()

	for _, bet := range []float64{5, 2e6, math.NaN()} {
		_, err := e.Spin(data, bet)
		assert.ErrorIs(t, err, model.ErrInvalidBet)
	}

	_, err := e.Spin(data, 500)
	assert.ErrorIs(t, err, model.ErrInsufficientGold)
	assert.Equal(t, 100.0, data.Gold)
	assert.Equal(t, int64(0), data.TotalSpins)
}

func TestSpin_Loss(t *testing.T) {
	e, _ := newTestEngine(t, constRNG(0))
	data := e.NewPlayer()

	res, err := e.Spin(data, 10)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeLoss, res.Outcome)
	assert.Equal(t, 0.0, res.Payout)
	assert.Equal(t, 90.0, data.Gold)
	assert.Equal(t, int64(1), data.TotalSpins)
	assert.Equal(t, 0.0, data.TotalGoldEarned)
}

func TestSpin_Jackpot(t *testing.T) {
	e, _ := newTestEngine(t, constRNG(0.999))
	data := e.NewPlayer()
	data.DailyQuests = []model.DailyQuest{
		{ID: "spin", Kind: model.QuestSpins, Target: 5},
		{ID: "win", Kind: model.QuestSlotWins, Target: 5},
	}

	res, err := e.Spin(data, 10)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeJackpot, res.Outcome)
	assert.Equal(t, [3]string{"seven", "seven", "seven"}, res.Reels)
	assert.Equal(t, 500.0, res.Payout)
	assert.Equal(t, 590.0, data.Gold)
	assert.Equal(t, 490.0, data.TotalGoldEarned)
	assert.Equal(t, 1.0, data.DailyQuests[0].Progress)
	assert.Equal(t, 1.0, data.DailyQuests[1].Progress)
}

func TestSpin_DrawReturnsBet(t *testing.T) {
	e, _ := newTestEngine(t, constRNG(0.7))
	data := e.NewPlayer()

	res, err := e.Spin(data, 10)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeDraw, res.Outcome)
	assert.Equal(t, 100.0, data.Gold)
	assert.Equal(t, 0.0, data.TotalGoldEarned)
	assert.Len(t, distinctSymbols(res.Reels), 2)
}

func TestSpin_GoldBoostScalesPayout(t *testing.T) {
	e, _ := newTestEngine(t, constRNG(0.999))
	data := e.NewPlayer()
	data.ActiveBoosts["gold_rush"] = testNow.Unix() + 60

	res, err := e.Spin(data, 10)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, res.Payout)
}

func TestSpin_ReelsMatchOutcome(t *testing.T) {
	e, _ := newTestEngine(t, NewSeededRNG(42))
	data := e.NewPlayer()
	data.Gold = 1e9

	seen := map[model.SlotOutcome]int{}
	for range 2000 {
		res, err := e.Spin(data, 10)
		require.NoError(t, err)
		seen[res.Outcome]++

		switch res.Outcome {
		case model.OutcomeLoss:
			assert.Len(t, distinctSymbols(res.Reels), 3)
		case model.OutcomeDraw:
			assert.Len(t, distinctSymbols(res.Reels), 2)
		default:
			assert.Len(t, distinctSymbols(res.Reels), 1)
		}
	}
	assert.Greater(t, seen[model.OutcomeLoss], seen[model.OutcomeBig])
	assert.Equal(t, int64(2000), data.TotalSpins)
}

func distinctSymbols(reels [3]string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, s := range reels {
		set[s] = struct{}{}
	}
	return set
}
