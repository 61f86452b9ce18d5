package shop

import (
	"context"
	"testing"
	"time"

	"clicker_backend/internal/economy"
	"clicker_backend/internal/model"
	"clicker_backend/internal/service/servicetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopService(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	env, err := servicetest.NewEnv(economy.NewSeededRNG(1), now)
	require.NoError(t, err)
	require.NoError(t, env.Seed(1, func(data *model.PlayerData) {
		data.Chips = 6
	}))
	s := NewShopService(env.Players)
	ctx := context.Background()

	p, err := s.Buy(ctx, 1, "midas_hour")
	require.NoError(t, err)
	assert.Equal(t, now.Unix()+3600, p.ExpiresAt)

	_, err = s.Buy(ctx, 1, "neon_reels")
	assert.ErrorIs(t, err, model.ErrInsufficientChips)

	items, err := s.Items(ctx, 1)
	require.NoError(t, err)
	for _, it := range items {
		assert.Equal(t, it.Item.ID == "midas_hour", it.Owned, it.Item.ID)
	}

	saved, err := env.Load(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Chips)
	assert.Equal(t, now.Unix()+3600, saved.ActiveBoosts["midas_hour"])
}
