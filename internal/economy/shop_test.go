package economy

import (
	"testing"
	"time"

	"clicker_backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyItem_Cosmetic(t *testing.T) {
	e, _ := newTestEngine(t, constRNG(0.5))
	data := e.NewPlayer()
	data.Chips = 5

	p, err := e.BuyItem(data, "neon_reels")
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.Chips)
	assert.Equal(t, int64(0), p.ExpiresAt)
	assert.True(t, data.Owns("neon_reels"))

	_, err = e.BuyItem(data, "neon_reels")
	assert.ErrorIs(t, err, model.ErrAlreadyOwned)

	_, err = e.BuyItem(data, "golden_cursor")
	assert.ErrorIs(t, err, model.ErrInsufficientChips)
	assert.Equal(t, int64(2), data.Chips)

	_, err = e.BuyItem(data, "unicorn")
	assert.ErrorIs(t, err, model.ErrUnknownItem)
}

func TestBuyItem_BoostExtends(t *testing.T) {
	e, clock := newTestEngine(t, constRNG(0.5))
	data := e.NewPlayer()
	data.Chips = 10
	now := testNow.Unix()

	p, err := e.BuyItem(data, "gold_rush")
	require.NoError(t, err)
	assert.Equal(t, now+1800, p.ExpiresAt)
	assert.Equal(t, 2.0, e.GoldBoost(data))
	assert.Equal(t, 2.0, e.TapPower(data))

	p, err = e.BuyItem(data, "gold_rush")
	require.NoError(t, err)
	assert.Equal(t, now+3600, p.ExpiresAt)
	assert.Equal(t, int64(6), data.Chips)

	clock.Advance(time.Hour + time.Second)
	assert.Equal(t, 1.0, e.GoldBoost(data))
	e.Prepare(data, "1")
	assert.Empty(t, data.ActiveBoosts)
}

func TestGoldBoost_Stacks(t *testing.T) {
	e, _ := newTestEngine(t, constRNG(0.5))
	data := e.NewPlayer()
	data.UpgradeLevels["golden_touch"] = 4
	data.ActiveBoosts["gold_rush"] = testNow.Unix() + 10
	data.ActiveBoosts["midas_hour"] = testNow.Unix() + 10

	assert.InDelta(t, 1.2*2*3, e.GoldBoost(data), 1e-9)
}

func TestShop_Entries(t *testing.T) {
	e, _ := newTestEngine(t, constRNG(0.5))
	data := e.NewPlayer()
	data.OwnedItems = append(data.OwnedItems, "golden_cursor")
	data.ActiveBoosts["midas_hour"] = testNow.Unix() + 60

	entries := e.Shop(data)
	require.Len(t, entries, 4)
	for _, en := range entries {
		switch en.Item.ID {
		case "golden_cursor":
			assert.True(t, en.Owned)
		case "midas_hour":
			assert.True(t, en.Owned)
			assert.Equal(t, testNow.Unix()+60, en.ExpiresAt)
		default:
			assert.False(t, en.Owned, en.Item.ID)
		}
	}
}
