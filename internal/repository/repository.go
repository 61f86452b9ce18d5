package repository

import (
	"context"

	"clicker_backend/internal/model"
)

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

// PlayerRepository хранит PlayerData одним документом на игрока.
// Отсутствующее или битое сохранение заменяется записью по умолчанию
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, userID int, data *model.PlayerData) error
	GetPlayer(ctx context.Context, userID int) (*model.PlayerData, error)
	// UpdatePlayer загружает запись с блокировкой, вызывает fn и сохраняет.
	// Ошибка из fn отменяет сохранение
	UpdatePlayer(ctx context.Context, userID int, fn func(data *model.PlayerData) error) error
}

// NewPlayerFunc фабрика записи по умолчанию
type NewPlayerFunc func() *model.PlayerData

// SlotStatsRepository общая по серверу статистика слота в памяти
type SlotStatsRepository interface {
	Record(outcome model.SlotOutcome, bet, payout float64)
	Stats() model.SlotStats
}
