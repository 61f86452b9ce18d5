package service

import (
	"context"
	"strconv"

	"clicker_backend/internal/economy"
	"clicker_backend/internal/model"
	"clicker_backend/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// Players общий для игровых сервисов доступ к записи игрока.
// Каждое изменение - одна транзакция: загрузка с блокировкой, мутация, запись
type Players struct {
	txManager trm.Manager
	repo      repository.PlayerRepository
	engine    *economy.Engine
}

func NewPlayers(txManager trm.Manager, repo repository.PlayerRepository, engine *economy.Engine) *Players {
	return &Players{
		txManager: txManager,
		repo:      repo,
		engine:    engine,
	}
}

func (p *Players) Engine() *economy.Engine {
	return p.engine
}

// Update выполняет fn над подготовленной записью. Ошибка fn откатывает всё
func (p *Players) Update(ctx context.Context, userID int, fn func(data *model.PlayerData) error) error {
	return p.txManager.Do(ctx, func(ctx context.Context) error {
		return p.repo.UpdatePlayer(ctx, userID, func(data *model.PlayerData) error {
			p.engine.Prepare(data, strconv.Itoa(userID))
			return fn(data)
		})
	})
}

// Read запись только для чтения, изменения не сохраняются
func (p *Players) Read(ctx context.Context, userID int) (*model.PlayerData, error) {
	data, err := p.repo.GetPlayer(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.engine.Prepare(data, strconv.Itoa(userID))
	return data, nil
}
