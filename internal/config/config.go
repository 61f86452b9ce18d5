package config

import (
	"time"

	"clicker_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
	AllowedOrigins() []string
	CookieSecure() bool
}

type PGConfig interface {
	DSN() string
	MaxConns() int32
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// StorageConfig где лежат сохранения игроков
type StorageConfig interface {
	Backend() string // pg | file
	Dir() string
}

// GameConfig настройки экономики из YAML
type GameConfig interface {
	Game() model.GameConfig
}
