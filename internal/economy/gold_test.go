package economy

import (
	"math"
	"testing"

	"clicker_backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAddGold(t *testing.T) {
	data := model.NewPlayerData(100, 10)

	for _, bad := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		AddGold(data, bad)
	}
	assert.Equal(t, 100.0, data.Gold)
	assert.Equal(t, 0.0, data.TotalGoldEarned)

	AddGold(data, 50)
	assert.Equal(t, 150.0, data.Gold)
	assert.Equal(t, 50.0, data.TotalGoldEarned)
}

func TestAddGold_AdvancesEarnQuest(t *testing.T) {
	data := model.NewPlayerData(0, 10)
	data.DailyQuests = []model.DailyQuest{{ID: "earn", Kind: model.QuestEarnGold, Target: 100}}

	AddGold(data, 60)
	AddGold(data, 60)
	assert.Equal(t, 100.0, data.DailyQuests[0].Progress)
}

func TestSpendGold(t *testing.T) {
	data := model.NewPlayerData(100, 10)

	assert.ErrorIs(t, SpendGold(data, 101), model.ErrInsufficientGold)
	assert.ErrorIs(t, SpendGold(data, -1), model.ErrInvalidAmount)
	assert.ErrorIs(t, SpendGold(data, math.NaN()), model.ErrInvalidAmount)
	assert.Equal(t, 100.0, data.Gold)

	assert.NoError(t, SpendGold(data, 100))
	assert.Equal(t, 0.0, data.Gold)
}

func TestClampBet(t *testing.T) {
	cfg := model.DefaultGameConfig()

	cases := []struct {
		name string
		bet  float64
		gold float64
		want float64
	}{
		{"below min", 5, 1000, 10},
		{"in range", 500, 1000, 500},
		{"above gold", 5000, 1000, 1000},
		{"poor player", 50, 5, 10},
		{"above max", 2e6, 1e7, 1e6},
		{"nan", math.NaN(), 1000, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClampBet(cfg, tc.bet, tc.gold))
		})
	}
}
