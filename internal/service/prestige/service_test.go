package prestige

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

func TestPrestigeService(t *testing.T) {
	env, err := servicetest.NewEnv(economy.NewSeededRNG(1), time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, env.Seed(1, func(data *model.PlayerData) {
		data.Gold = 40_000
		data.TotalGoldEarned = 260_000
		data.UpgradeLevels["sharp_finger"] = 12
	}))
	s := NewPrestigeService(env.Players)
	ctx := context.Background()

	preview, err := s.Preview(ctx, 1)
	require.NoError(t, err)
	assert.True(t, preview.Ready)
	assert.Equal(t, int64(2), preview.ChipsAvailable)

	res, err := s.Prestige(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.ChipsAwarded)

	saved, err := env.Load(1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, saved.Gold)
	assert.Empty(t, saved.UpgradeLevels)
	assert.Equal(t, int64(2), saved.PrestigeChips)

	_, err = s.Prestige(ctx, 1)
	assert.ErrorIs(t, err, model.ErrPrestigeNotReady)
}
