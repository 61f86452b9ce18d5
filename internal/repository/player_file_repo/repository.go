package player_file_repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"clicker_backend/internal/model"
	"clicker_backend/internal/repository"
)

// repo сохранения файлами <dir>/<userID>.json.
// Запись через временный файл и rename, чтобы не оставлять обрезанный JSON
type repo struct {
	dir       string
	newPlayer repository.NewPlayerFunc

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewPlayerFileRepository(dir string, newPlayer repository.NewPlayerFunc) (repository.PlayerRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &repo{
		dir:       dir,
		newPlayer: newPlayer,
		locks:     make(map[int]*sync.Mutex),
	}, nil
}

func (r *repo) CreatePlayer(_ context.Context, userID int, data *model.PlayerData) error {
	l := r.lock(userID)
	l.Lock()
	defer l.Unlock()

	return r.write(userID, data)
}

func (r *repo) GetPlayer(_ context.Context, userID int) (*model.PlayerData, error) {
	l := r.lock(userID)
	l.Lock()
	defer l.Unlock()

	return r.read(userID)
}

// UpdatePlayer держит блокировку игрока на всё время fn
func (r *repo) UpdatePlayer(ctx context.Context, userID int, fn func(data *model.PlayerData) error) error {
	l := r.lock(userID)
	l.Lock()
	defer l.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.read(userID)
	if err != nil {
		return err
	}
	if err = fn(data); err != nil {
		return err
	}
	return r.write(userID, data)
}

func (r *repo) lock(userID int) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[userID] = l
	}
	return l
}

func (r *repo) path(userID int) string {
	return filepath.Join(r.dir, strconv.Itoa(userID)+".json")
}

func (r *repo) read(userID int) (*model.PlayerData, error) {
	raw, err := os.ReadFile(r.path(userID))
	if errors.Is(err, os.ErrNotExist) {
		return r.newPlayer(), nil
	}
	if err != nil {
		return nil, err
	}

	data, err := repository.DecodeSave(raw)
	if err != nil {
		log.Printf("WARN: user %d: %v, replacing with default save", userID, err)
		return r.newPlayer(), nil
	}
	return data, nil
}

func (r *repo) write(userID int, data *model.PlayerData) error {
	raw, err := repository.EncodeSave(data)
	if err != nil {
		return err
	}

	path := r.path(userID)
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
