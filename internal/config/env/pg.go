package env

import (
	"errors"
	"os"
	"strconv"

	"clicker_backend/internal/config"
)

const (
	dsnName         = "PG_DSN"
	maxConnsEnvName = "PG_MAX_CONNS"

	defaultMaxConns = 10
)

type pgConfig struct {
	dsn      string
	maxConns int32
}

func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(dsnName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	maxConns := int32(defaultMaxConns)
	if raw := os.Getenv(maxConnsEnvName); len(raw) > 0 {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			return nil, errors.New("invalid " + maxConnsEnvName + ": " + raw)
		}
		maxConns = int32(n)
	}

	return &pgConfig{
		dsn:      dsn,
		maxConns: maxConns,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

// MaxConns размер пула соединений
func (cfg *pgConfig) MaxConns() int32 {
	return cfg.maxConns
}
