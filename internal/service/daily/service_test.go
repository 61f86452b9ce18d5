package daily

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

func TestClaimLogin(t *testing.T) {
	env, err := servicetest.NewEnv(economy.NewSeededRNG(1), now)
	require.NoError(t, err)
	require.NoError(t, env.Seed(1, nil))
	s := NewDailyService(env.Players)
	ctx := context.Background()

	reward, err := s.ClaimLogin(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, reward.Streak)
	assert.Equal(t, 200.0, reward.Balance)

	_, err = s.ClaimLogin(ctx, 1)
	assert.ErrorIs(t, err, model.ErrAlreadyClaimed)

	env.Clock.Advance(24 * time.Hour)
	reward, err = s.ClaimLogin(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, reward.Streak)
	assert.Equal(t, 150.0, reward.Gold)
}

func TestQuests_PersistedAndClaimable(t *testing.T) {
	env, err := servicetest.NewEnv(economy.NewSeededRNG(1), now)
	require.NoError(t, err)
	require.NoError(t, env.Seed(1, nil))
	s := NewDailyService(env.Players)
	ctx := context.Background()

	quests, err := s.Quests(ctx, 1)
	require.NoError(t, err)
	require.Len(t, quests, 3)

	again, err := s.Quests(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, quests, again)

	_, err = s.ClaimQuest(ctx, 1, quests[0].ID)
	assert.ErrorIs(t, err, model.ErrQuestIncomplete)

	// выполняем квест напрямую в сохранении
	require.NoError(t, env.Repo.UpdatePlayer(ctx, 1, func(data *model.PlayerData) error {
		data.DailyQuests[0].Progress = data.DailyQuests[0].Target
		return nil
	}))

	claim, err := s.ClaimQuest(ctx, 1, quests[0].ID)
	require.NoError(t, err)
	assert.Equal(t, quests[0].RewardGold, claim.RewardGold)
	assert.Equal(t, 100+quests[0].RewardGold, claim.Gold)

	_, err = s.ClaimQuest(ctx, 1, quests[0].ID)
	assert.ErrorIs(t, err, model.ErrAlreadyClaimed)

	_, err = s.ClaimQuest(ctx, 1, "nope")
	assert.ErrorIs(t, err, model.ErrUnknownQuest)
}
