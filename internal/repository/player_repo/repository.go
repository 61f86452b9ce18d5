package player_repo

import (
	"context"
	"errors"
	"log"
	"time"

	"clicker_backend/internal/model"
	"clicker_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "player_saves"
	colUserID    = "user_id"
	colData      = "data"
	colVersion   = "version"
	colUpdatedAt = "updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc       *pgxpool.Pool
	getter    *trmpgx.CtxGetter
	newPlayer repository.NewPlayerFunc
}

// NewPlayerRepository сохранения в jsonb колонке, по строке на пользователя
func NewPlayerRepository(dbc *pgxpool.Pool, newPlayer repository.NewPlayerFunc) repository.PlayerRepository {
	return &repo{
		dbc:       dbc,
		getter:    trmpgx.DefaultCtxGetter,
		newPlayer: newPlayer,
	}
}

// CreatePlayer - первая запись игрока при регистрации
func (r *repo) CreatePlayer(ctx context.Context, userID int, data *model.PlayerData) error {
	return r.save(ctx, userID, data)
}

// GetPlayer - чтение без блокировки
func (r *repo) GetPlayer(ctx context.Context, userID int) (*model.PlayerData, error) {
	return r.load(ctx, userID, false)
}

// UpdatePlayer - SELECT ... FOR UPDATE, изменение и запись в той же транзакции.
// Транзакцию открывает сервис через trm.Manager
func (r *repo) UpdatePlayer(ctx context.Context, userID int, fn func(data *model.PlayerData) error) error {
	data, err := r.load(ctx, userID, true)
	if err != nil {
		return err
	}
	if err = fn(data); err != nil {
		return err
	}
	return r.save(ctx, userID, data)
}

func (r *repo) load(ctx context.Context, userID int, forUpdate bool) (*model.PlayerData, error) {
	sqlStr, args, err := selectSaveQuery(userID, forUpdate)
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		log.Printf("save for user %d not found, starting fresh", userID)
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

func (r *repo) save(ctx context.Context, userID int, data *model.PlayerData) error {
	raw, err := repository.EncodeSave(data)
	if err != nil {
		return err
	}

	sqlStr, args, err := upsertSaveQuery(userID, raw, time.Now())
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func selectSaveQuery(userID int, forUpdate bool) (string, []interface{}, error) {
	q := psql.Select(colData).
		From(table).
		Where(sq.Eq{colUserID: userID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	return q.ToSql()
}

func upsertSaveQuery(userID int, raw []byte, now time.Time) (string, []interface{}, error) {
	return psql.Insert(table).
		Columns(colUserID, colData, colVersion, colUpdatedAt).
		Values(userID, raw, model.SaveVersion, now).
		Suffix("ON CONFLICT (" + colUserID + ") DO UPDATE SET " +
			colData + " = EXCLUDED." + colData + ", " +
			colVersion + " = EXCLUDED." + colVersion + ", " +
			colUpdatedAt + " = EXCLUDED." + colUpdatedAt).
		ToSql()
}
