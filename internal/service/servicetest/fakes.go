// Package servicetest фейки репозиториев и транзакций для тестов сервисов
package servicetest

import (
	"context"
	"errors"
	"sync"
	"time"

	"clicker_backend/internal/economy"
	"clicker_backend/internal/model"
	"clicker_backend/internal/repository"
	"clicker_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// TxManager выполняет fn без транзакции
type TxManager struct {
	Calls int
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

func (m *TxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// PlayerRepo хранит JSON сохранения в памяти, как настоящие репозитории
type PlayerRepo struct {
	mu        sync.Mutex
	saves     map[int][]byte
	newPlayer repository.NewPlayerFunc
}

func NewPlayerRepo(newPlayer repository.NewPlayerFunc) *PlayerRepo {
	return &PlayerRepo{saves: map[int][]byte{}, newPlayer: newPlayer}
}

func (r *PlayerRepo) CreatePlayer(_ context.Context, userID int, data *model.PlayerData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.put(userID, data)
}

func (r *PlayerRepo) GetPlayer(_ context.Context, userID int) (*model.PlayerData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(userID)
}

func (r *PlayerRepo) UpdatePlayer(_ context.Context, userID int, fn func(data *model.PlayerData) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.get(userID)
	if err != nil {
		return err
	}
	if err = fn(data); err != nil {
		return err
	}
	return r.put(userID, data)
}

// Put кладёт сырое сохранение, например битое
func (r *PlayerRepo) Put(userID int, raw []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves[userID] = raw
}

func (r *PlayerRepo) get(userID int) (*model.PlayerData, error) {
	raw, ok := r.saves[userID]
	if !ok {
		return r.newPlayer(), nil
	}
	data, err := repository.DecodeSave(raw)
	if errors.Is(err, model.ErrMalformedSave) {
		return r.newPlayer(), nil
	}
	return data, err
}

func (r *PlayerRepo) put(userID int, data *model.PlayerData) error {
	raw, err := repository.EncodeSave(data)
	if err != nil {
		return err
	}
	r.saves[userID] = raw
	return nil
}

// Clock ручные часы
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

func NewClock(t time.Time) *Clock {
	return &Clock{t: t}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// Env собранные зависимости игрового сервиса
type Env struct {
	Tx      *TxManager
	Repo    *PlayerRepo
	Clock   *Clock
	Engine  *economy.Engine
	Players *service.Players
}

// NewEnv движок с конфигом по умолчанию, заданным rng и часами на now
func NewEnv(rng economy.RandomSource, now time.Time) (*Env, error) {
	clock := NewClock(now)
	engine, err := economy.NewEngine(model.DefaultGameConfig(), rng, clock)
	if err != nil {
		return nil, err
	}
	tx := &TxManager{}
	repo := NewPlayerRepo(engine.NewPlayer)
	return &Env{
		Tx:      tx,
		Repo:    repo,
		Clock:   clock,
		Engine:  engine,
		Players: service.NewPlayers(tx, repo, engine),
	}, nil
}

// Seed сохраняет запись игрока после mutate
func (e *Env) Seed(userID int, mutate func(data *model.PlayerData)) error {
	data := e.Engine.NewPlayer()
	if mutate != nil {
		mutate(data)
	}
	return e.Repo.CreatePlayer(context.Background(), userID, data)
}

// Load текущая сохранённая запись
func (e *Env) Load(userID int) (*model.PlayerData, error) {
	return e.Repo.GetPlayer(context.Background(), userID)
}
