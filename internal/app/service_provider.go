package app

import (
	"context"

	authAPI "clicker_backend/internal/api/auth"
	clickAPI "clicker_backend/internal/api/click"
	dailyAPI "clicker_backend/internal/api/daily"
	playerAPI "clicker_backend/internal/api/player"
	prestigeAPI "clicker_backend/internal/api/prestige"
	shopAPI "clicker_backend/internal/api/shop"
	slotAPI "clicker_backend/internal/api/slot"
	upgradeAPI "clicker_backend/internal/api/upgrade"
	"clicker_backend/internal/config"
	"clicker_backend/internal/config/env"
	"clicker_backend/internal/economy"
	"clicker_backend/internal/middleware"
	"clicker_backend/internal/repository"
	"clicker_backend/internal/repository/auth_repo"
	"clicker_backend/internal/repository/player_file_repo"
	"clicker_backend/internal/repository/player_repo"
	"clicker_backend/internal/repository/slot_stats_repo"
	"clicker_backend/internal/repository/user_repo"
	"clicker_backend/internal/service"
	"clicker_backend/internal/service/auth"
	"clicker_backend/internal/service/click"
	"clicker_backend/internal/service/daily"
	"clicker_backend/internal/service/player"
	"clicker_backend/internal/service/prestige"
	"clicker_backend/internal/service/shop"
	"clicker_backend/internal/service/slot"
	"clicker_backend/internal/service/upgrade"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtConfig config.JWTConfig
	authRepo  repository.AuthRepository
	authServ  service.AuthService
	authHand  *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Game core
	gameCfg       config.GameConfig
	storageCfg    config.StorageConfig
	engine        *economy.Engine
	playerRepo    repository.PlayerRepository
	slotStatsRepo repository.SlotStatsRepository
	players       *service.Players

	// Game services
	playerServ   service.PlayerService
	clickServ    service.ClickService
	slotServ     service.SlotService
	upgradeServ  service.UpgradeService
	prestigeServ service.PrestigeService
	dailyServ    service.DailyService
	shopServ     service.ShopService

	// Game handlers
	playerHand   *playerAPI.Handler
	clickHand    *clickAPI.Handler
	slotHand     *slotAPI.Handler
	upgradeHand  *upgradeAPI.Handler
	prestigeHand *prestigeAPI.Handler
	dailyHand    *dailyAPI.Handler
	shopHand     *shopAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := pgxpool.ParseConfig(sp.PgConfig().DSN())
		if err != nil {
			panic("failed to parse db dsn: " + err.Error())
		}
		poolCfg.MaxConns = sp.PgConfig().MaxConns()

		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(auth.Deps{
			TxManager:  sp.TXManager(ctx),
			UserRepo:   sp.UserRepo(ctx),
			AuthRepo:   sp.AuthRepo(ctx),
			PlayerRepo: sp.PlayerRepo(ctx),
			NewPlayer:  sp.Engine().NewPlayer,
			JWTConfig:  sp.JWTConfig(),
		})
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:   sp.AuthService(ctx),
			Secure: sp.HTTPCfg().CookieSecure(),
			MaxAge: int(sp.JWTConfig().RefreshTokenDuration().Seconds()),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfig()
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) Engine() *economy.Engine {
	if sp.engine == nil {
		e, err := economy.NewEngine(sp.GameCfg().Game(), economy.DefaultRNG(), economy.RealClock{})
		if err != nil {
			panic("failed to create economy engine: " + err.Error())
		}
		sp.engine = e
	}
	return sp.engine
}

// PlayerRepo хранилище сохранений: postgres или файлы, по SAVE_STORAGE
func (sp *ServiceProvider) PlayerRepo(ctx context.Context) repository.PlayerRepository {
	if sp.playerRepo == nil {
		switch sp.StorageCfg().Backend() {
		case env.StorageFile:
			r, err := player_file_repo.NewPlayerFileRepository(sp.StorageCfg().Dir(), sp.Engine().NewPlayer)
			if err != nil {
				panic("failed to create file save storage: " + err.Error())
			}
			sp.playerRepo = r
		default:
			sp.playerRepo = player_repo.NewPlayerRepository(sp.DBClient(ctx), sp.Engine().NewPlayer)
		}
	}
	return sp.playerRepo
}

func (sp *ServiceProvider) SlotStatsRepo() repository.SlotStatsRepository {
	if sp.slotStatsRepo == nil {
		odds := economy.SlotOdds(sp.GameCfg().Game(), 0)
		sp.slotStatsRepo = slot_stats_repo.NewSlotStatsRepository(slot_stats_repo.TargetRTP(odds))
	}
	return sp.slotStatsRepo
}

func (sp *ServiceProvider) Players(ctx context.Context) *service.Players {
	if sp.players == nil {
		sp.players = service.NewPlayers(sp.TXManager(ctx), sp.PlayerRepo(ctx), sp.Engine())
	}
	return sp.players
}

func (sp *ServiceProvider) PlayerHandler(ctx context.Context) *playerAPI.Handler {
	if sp.playerHand == nil {
		if sp.playerServ == nil {
			sp.playerServ = player.NewPlayerService(sp.Players(ctx))
		}
		sp.playerHand = playerAPI.NewHandler(playerAPI.HandlerDeps{Serv: sp.playerServ})
	}
	return sp.playerHand
}

func (sp *ServiceProvider) ClickHandler(ctx context.Context) *clickAPI.Handler {
	if sp.clickHand == nil {
		if sp.clickServ == nil {
			sp.clickServ = click.NewClickService(sp.Players(ctx))
		}
		sp.clickHand = clickAPI.NewHandler(clickAPI.HandlerDeps{Serv: sp.clickServ})
	}
	return sp.clickHand
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		if sp.slotServ == nil {
			sp.slotServ = slot.NewSlotService(sp.Players(ctx), sp.SlotStatsRepo())
		}
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{Serv: sp.slotServ})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) UpgradeHandler(ctx context.Context) *upgradeAPI.Handler {
	if sp.upgradeHand == nil {
		if sp.upgradeServ == nil {
			sp.upgradeServ = upgrade.NewUpgradeService(sp.Players(ctx))
		}
		sp.upgradeHand = upgradeAPI.NewHandler(upgradeAPI.HandlerDeps{Serv: sp.upgradeServ})
	}
	return sp.upgradeHand
}

func (sp *ServiceProvider) PrestigeHandler(ctx context.Context) *prestigeAPI.Handler {
	if sp.prestigeHand == nil {
		if sp.prestigeServ == nil {
			sp.prestigeServ = prestige.NewPrestigeService(sp.Players(ctx))
		}
		sp.prestigeHand = prestigeAPI.NewHandler(prestigeAPI.HandlerDeps{Serv: sp.prestigeServ})
	}
	return sp.prestigeHand
}

func (sp *ServiceProvider) DailyHandler(ctx context.Context) *dailyAPI.Handler {
	if sp.dailyHand == nil {
		if sp.dailyServ == nil {
			sp.dailyServ = daily.NewDailyService(sp.Players(ctx))
		}
		sp.dailyHand = dailyAPI.NewHandler(dailyAPI.HandlerDeps{Serv: sp.dailyServ})
	}
	return sp.dailyHand
}

func (sp *ServiceProvider) ShopHandler(ctx context.Context) *shopAPI.Handler {
	if sp.shopHand == nil {
		if sp.shopServ == nil {
			sp.shopServ = shop.NewShopService(sp.Players(ctx))
		}
		sp.shopHand = shopAPI.NewHandler(shopAPI.HandlerDeps{Serv: sp.shopServ})
	}
	return sp.shopHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   sp.HTTPCfg().AllowedOrigins(),
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Всё остальное только с access токеном
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTConfig().AccessTokenSecretKey()))

			playerHandler := sp.PlayerHandler(ctx)
			rr.Route("/player", func(pr chi.Router) {
				pr.Get("/state", playerHandler.State)
				pr.Post("/bet", playerHandler.SetBet)
				pr.Post("/collect-idle", playerHandler.CollectIdle)
			})

			rr.Post("/click/tap", sp.ClickHandler(ctx).Tap)

			slotHandler := sp.SlotHandler(ctx)
			rr.Route("/slot", func(sr chi.Router) {
				sr.Post("/spin", slotHandler.Spin)
				sr.Get("/odds", slotHandler.Odds)
				sr.Get("/stats", slotHandler.Stats)
			})

			upgradeHandler := sp.UpgradeHandler(ctx)
			rr.Route("/upgrade", func(ur chi.Router) {
				ur.Get("/list", upgradeHandler.List)
				ur.Post("/buy", upgradeHandler.Buy)
			})

			prestigeHandler := sp.PrestigeHandler(ctx)
			rr.Route("/prestige", func(pr chi.Router) {
				pr.Get("/preview", prestigeHandler.Preview)
				pr.Post("/reset", prestigeHandler.Reset)
			})

			dailyHandler := sp.DailyHandler(ctx)
			rr.Route("/daily", func(dr chi.Router) {
				dr.Post("/login", dailyHandler.ClaimLogin)
				dr.Get("/quests", dailyHandler.Quests)
				dr.Post("/quests/claim", dailyHandler.ClaimQuest)
			})

			shopHandler := sp.ShopHandler(ctx)
			rr.Route("/shop", func(sr chi.Router) {
				sr.Get("/items", shopHandler.Items)
				sr.Post("/buy", shopHandler.Buy)
			})
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает пул соединений
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
