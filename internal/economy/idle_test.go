package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectIdle_NoIncomeWithoutUpgrade(t *testing.T) {
	e, clock := newTestEngine(t, constRNG(0.5))
	data := e.NewPlayer()

	clock.Advance(time.Hour)
	res := e.CollectIdle(data)
	assert.Equal(t, 0.0, res.Gold)
	assert.Equal(t, clock.Now().Unix(), data.LastSeenAt)
}

func TestCollectIdle_AccruesAndCaps(t *testing.T) {
	e, clock := newTestEngine(t, constRNG(0.5))
	data := e.NewPlayer()
	data.UpgradeLevels["money_tree"] = 2

	clock.Advance(time.Hour)
	res := e.CollectIdle(data)
	assert.Equal(t, 3600.0, res.Seconds)
	assert.InDelta(t, 1.0, res.Rate, 1e-12)
	assert.InDelta(t, 3600.0, res.Gold, 1e-9)
	assert.InDelta(t, 3700.0, data.Gold, 1e-9)

	// сразу повторно - ничего
	assert.Equal(t, 0.0, e.CollectIdle(data).Gold)

	clock.Advance(24 * time.Hour)
	res = e.CollectIdle(data)
	assert.Equal(t, 8*3600.0, res.Seconds)
}

func TestCollectIdle_UnknownLastSeen(t *testing.T) {
	e, clock := newTestEngine(t, constRNG(0.5))
	data := e.NewPlayer()
	data.UpgradeLevels["money_tree"] = 2
	data.LastSeenAt = 0

	res := e.CollectIdle(data)
	assert.Equal(t, 0.0, res.Gold)
	assert.Equal(t, clock.Now().Unix(), data.LastSeenAt)
}

func TestBuyUpgrade_SettlesIdleAtOldRate(t *testing.T) {
	e, clock := newTestEngine(t, constRNG(0.5))
	data := e.NewPlayer()
	data.Gold = 1000

	// 8 часов без money_tree: накопленного дохода нет
	clock.Advance(8 * time.Hour)
	res, err := e.BuyUpgrade(data, "money_tree")
	require.NoError(t, err)
	assert.InDelta(t, 1000-res.Cost, data.Gold, 1e-9)
	assert.Equal(t, clock.Now().Unix(), data.LastSeenAt)

	clock.Advance(time.Hour)
	idle := e.CollectIdle(data)
	assert.Equal(t, 3600.0, idle.Seconds)
	assert.InDelta(t, 0.5*3600, idle.Gold, 1e-9)
}

func TestBuyUpgrade_GoldBoostSettlesIdle(t *testing.T) {
	e, clock := newTestEngine(t, constRNG(0.5))
	data := e.NewPlayer()
	data.UpgradeLevels["money_tree"] = 2
	data.Gold = 1000

	clock.Advance(time.Hour)
	res, err := e.BuyUpgrade(data, "golden_touch")
	require.NoError(t, err)
	// час по ставке 1 золото/с без бонуса
	assert.InDelta(t, 1000+3600-res.Cost, data.Gold, 1e-9)

	clock.Advance(time.Hour)
	assert.InDelta(t, 3600*1.05, e.CollectIdle(data).Gold, 1e-9)
}

func TestBuyItem_BoostSettlesIdle(t *testing.T) {
	e, clock := newTestEngine(t, constRNG(0.5))
	data := e.NewPlayer()
	data.UpgradeLevels["money_tree"] = 2
	data.Chips = 2

	clock.Advance(time.Hour)
	_, err := e.BuyItem(data, "gold_rush")
	require.NoError(t, err)
	assert.InDelta(t, 100+3600, data.Gold, 1e-9)

	// буст x2 действует только на время после покупки
	clock.Advance(10 * time.Minute)
	assert.InDelta(t, 600*2, e.CollectIdle(data).Gold, 1e-9)
}
