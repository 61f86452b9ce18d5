package player_file_repo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"clicker_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*repo, string) {
	t.Helper()
	dir := t.TempDir()
	r, err := NewPlayerFileRepository(dir, func() *model.PlayerData {
		return model.NewPlayerData(100, 10)
	})
	require.NoError(t, err)
	return r.(*repo), dir
}

func TestFileRepo_MissingSaveIsDefault(t *testing.T) {
	r, _ := newTestRepo(t)

	data, err := r.GetPlayer(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, data.Gold)
}

func TestFileRepo_CreateAndUpdate(t *testing.T) {
	r, dir := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreatePlayer(ctx, 1, model.NewPlayerData(500, 10)))
	err := r.UpdatePlayer(ctx, 1, func(data *model.PlayerData) error {
		data.Gold -= 200
		return nil
	})
	require.NoError(t, err)

	data, err := r.GetPlayer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 300.0, data.Gold)

	_, err = os.Stat(filepath.Join(dir, "1.json.tmp"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileRepo_FailedUpdateIsNotSaved(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, r.CreatePlayer(ctx, 1, model.NewPlayerData(500, 10)))

	err := r.UpdatePlayer(ctx, 1, func(data *model.PlayerData) error {
		data.Gold = 0
		return model.ErrInsufficientGold
	})
	assert.ErrorIs(t, err, model.ErrInsufficientGold)

	data, err := r.GetPlayer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 500.0, data.Gold)
}

func TestFileRepo_MalformedSaveReplaced(t *testing.T) {
	r, dir := newTestRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3.json"), []byte("{not json"), 0o644))

	data, err := r.GetPlayer(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 100.0, data.Gold)
}

func TestFileRepo_ConcurrentUpdates(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, r.CreatePlayer(ctx, 1, model.NewPlayerData(0, 10)))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.UpdatePlayer(ctx, 1, func(data *model.PlayerData) error {
				data.Gold++
				return nil
			})
		}()
	}
	wg.Wait()

	data, err := r.GetPlayer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 50.0, data.Gold)
}
