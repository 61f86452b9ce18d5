package auth

import (
	"clicker_backend/internal/config"
	"clicker_backend/internal/repository"
	"clicker_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager  trm.Manager
	userRepo   repository.UserRepository
	authRepo   repository.AuthRepository
	playerRepo repository.PlayerRepository
	newPlayer  repository.NewPlayerFunc
	jwtConfig  config.JWTConfig
}

type Deps struct {
	TxManager  trm.Manager
	UserRepo   repository.UserRepository
	AuthRepo   repository.AuthRepository
	PlayerRepo repository.PlayerRepository
	NewPlayer  repository.NewPlayerFunc
	JWTConfig  config.JWTConfig
}

func NewAuthService(deps Deps) service.AuthService {
	return &serv{
		txManager:  deps.TxManager,
		userRepo:   deps.UserRepo,
		authRepo:   deps.AuthRepo,
		playerRepo: deps.PlayerRepo,
		newPlayer:  deps.NewPlayer,
		jwtConfig:  deps.JWTConfig,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
