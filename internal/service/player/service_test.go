package player

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

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestPlayerService(t *testing.T) {
	env, err := servicetest.NewEnv(economy.NewSeededRNG(1), now)
	require.NoError(t, err)
	require.NoError(t, env.Seed(1, func(data *model.PlayerData) {
		data.Gold = 1000
		data.UpgradeLevels["money_tree"] = 4
	}))
	s := NewPlayerService(env.Players)
	ctx := context.Background()

	st, err := s.State(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, st.Data.Gold)
	assert.InDelta(t, 2.0, st.Effects.IdleIncome, 1e-9)
	assert.Len(t, st.Data.DailyQuests, 3)

	bet, err := s.SetBet(ctx, 1, 5000)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, bet)

	env.Clock.Advance(10 * time.Second)
	res, err := s.CollectIdle(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, res.Gold, 1e-9)

	saved, err := env.Load(1)
	require.NoError(t, err)
	assert.InDelta(t, 1020.0, saved.Gold, 1e-9)
	assert.Equal(t, 1000.0, saved.CurrentBet)
}

func TestPlayerService_MalformedSaveStartsFresh(t *testing.T) {
	env, err := servicetest.NewEnv(economy.NewSeededRNG(1), now)
	require.NoError(t, err)
	env.Repo.Put(5, []byte("{broken"))

	st, err := NewPlayerService(env.Players).State(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 100.0, st.Data.Gold)
}
