package click

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

// noCrit всегда выше шанса крита
type noCrit struct{}

func (noCrit) Float64() float64 { return 0.99 }

func TestTap(t *testing.T) {
	env, err := servicetest.NewEnv(noCrit{}, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, env.Seed(1, nil))
	s := NewClickService(env.Players)

	res, err := s.Tap(context.Background(), 1, model.Tap{Count: 25})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, res.Payout, 1e-9)
	assert.Equal(t, 1, env.Tx.Calls)

	saved, err := env.Load(1)
	require.NoError(t, err)
	assert.InDelta(t, 125.0, saved.Gold, 1e-9)
	assert.Equal(t, int64(25), saved.TotalClicks)
}

func TestTap_InvalidCountNotSaved(t *testing.T) {
	env, err := servicetest.NewEnv(economy.NewSeededRNG(3), time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, env.Seed(1, nil))
	s := NewClickService(env.Players)

	_, err = s.Tap(context.Background(), 1, model.Tap{Count: 0})
	assert.ErrorIs(t, err, model.ErrInvalidAmount)

	saved, err := env.Load(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), saved.TotalClicks)
}
