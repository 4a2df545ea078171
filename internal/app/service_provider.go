package app

import (
	"context"

	authAPI "arcade_backend/internal/api/auth"
	bonusAPI "arcade_backend/internal/api/bonus"
	leaderboardAPI "arcade_backend/internal/api/leaderboard"
	wagerAPI "arcade_backend/internal/api/wager"
	"arcade_backend/internal/config"
	"arcade_backend/internal/config/env"
	"arcade_backend/internal/games"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/repository"
	"arcade_backend/internal/repository/auth_repo"
	"arcade_backend/internal/repository/bonus_repo"
	"arcade_backend/internal/repository/leaderboard_cache"
	"arcade_backend/internal/repository/user_repo"
	"arcade_backend/internal/repository/wager_repo"
	"arcade_backend/internal/service"
	"arcade_backend/internal/service/auth"
	"arcade_backend/internal/service/bonus"
	"arcade_backend/internal/service/leaderboard"
	"arcade_backend/internal/service/wager"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient *redis.Client

	// Auth bits
	jwtConfig config.JWTConfig
	authRepo  repository.AuthRepository
	authServ  service.AuthService
	authHand  *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Wager bits
	gamesCfg  config.GamesConfig
	wagerRepo repository.WagerRepository
	rng       games.RNG
	wagerServ service.WagerService
	wagerHand *wagerAPI.Handler

	// Bonus bits
	bonusCfg  config.BonusConfig
	bonusRepo repository.BonusRepository
	bonusServ service.BonusService
	bonusHand *bonusAPI.Handler

	// Leaderboard bits
	lbCfg   config.LeaderboardConfig
	lbCache repository.LeaderboardCache
	lbServ  service.LeaderboardService
	lbHand  *leaderboardAPI.Handler

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
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
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

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		client := redis.NewClient(&redis.Options{
			Addr:     sp.RedisConfig().Addr(),
			Password: sp.RedisConfig().Password(),
			DB:       sp.RedisConfig().DB(),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = client
	}
	return sp.redisClient
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
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTConfig())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GamesCfg() config.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) WagerRepository(ctx context.Context) repository.WagerRepository {
	if sp.wagerRepo == nil {
		sp.wagerRepo = wager_repo.NewWagerRepository(sp.DBClient(ctx))
	}
	return sp.wagerRepo
}

func (sp *ServiceProvider) RNG() games.RNG {
	if sp.rng == nil {
		sp.rng = games.NewCryptoRNG()
	}
	return sp.rng
}

func (sp *ServiceProvider) WagerService(ctx context.Context) service.WagerService {
	if sp.wagerServ == nil {
		sp.wagerServ = wager.NewWagerService(
			sp.GamesCfg(),
			sp.UserRepo(ctx),
			sp.WagerRepository(ctx),
			sp.RNG(),
			sp.TXManager(ctx),
		)
	}
	return sp.wagerServ
}

func (sp *ServiceProvider) WagerHandler(ctx context.Context) *wagerAPI.Handler {
	if sp.wagerHand == nil {
		sp.wagerHand = wagerAPI.NewHandler(wagerAPI.HandlerDeps{Serv: sp.WagerService(ctx)})
	}
	return sp.wagerHand
}

func (sp *ServiceProvider) BonusCfg() config.BonusConfig {
	if sp.bonusCfg == nil {
		cfg, err := env.NewBonusConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get bonus config: " + err.Error())
		}
		sp.bonusCfg = cfg
	}
	return sp.bonusCfg
}

func (sp *ServiceProvider) BonusRepository(ctx context.Context) repository.BonusRepository {
	if sp.bonusRepo == nil {
		sp.bonusRepo = bonus_repo.NewBonusRepository(sp.DBClient(ctx))
	}
	return sp.bonusRepo
}

func (sp *ServiceProvider) BonusService(ctx context.Context) service.BonusService {
	if sp.bonusServ == nil {
		sp.bonusServ = bonus.NewBonusService(
			sp.BonusCfg(),
			sp.UserRepo(ctx),
			sp.BonusRepository(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.bonusServ
}

func (sp *ServiceProvider) BonusHandler(ctx context.Context) *bonusAPI.Handler {
	if sp.bonusHand == nil {
		sp.bonusHand = bonusAPI.NewHandler(bonusAPI.HandlerDeps{Serv: sp.BonusService(ctx)})
	}
	return sp.bonusHand
}

func (sp *ServiceProvider) LeaderboardCfg() config.LeaderboardConfig {
	if sp.lbCfg == nil {
		cfg, err := env.NewLeaderboardConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get leaderboard config: " + err.Error())
		}
		sp.lbCfg = cfg
	}
	return sp.lbCfg
}

func (sp *ServiceProvider) LeaderboardCache(ctx context.Context) repository.LeaderboardCache {
	if sp.lbCache == nil {
		sp.lbCache = leaderboard_cache.NewLeaderboardCache(sp.RedisClient(ctx))
	}
	return sp.lbCache
}

func (sp *ServiceProvider) LeaderboardService(ctx context.Context) service.LeaderboardService {
	if sp.lbServ == nil {
		sp.lbServ = leaderboard.NewLeaderboardService(
			sp.LeaderboardCfg(),
			sp.WagerRepository(ctx),
			sp.LeaderboardCache(ctx),
		)
	}
	return sp.lbServ
}

func (sp *ServiceProvider) LeaderboardHandler(ctx context.Context) *leaderboardAPI.Handler {
	if sp.lbHand == nil {
		sp.lbHand = leaderboardAPI.NewHandler(leaderboardAPI.HandlerDeps{Serv: sp.LeaderboardService(ctx)})
	}
	return sp.lbHand
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

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
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

		// Wager endpoints
		wagerHandler := sp.WagerHandler(ctx)
		r.Route("/wager", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTConfig()))
			rr.Post("/place", wagerHandler.Place)
			rr.Post("/deposit", wagerHandler.Deposit)
			rr.Get("/check-data", wagerHandler.CheckData)
		})

		// Bonus endpoints
		bonusHandler := sp.BonusHandler(ctx)
		r.Route("/bonus", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTConfig()))
			rr.Post("/claim", bonusHandler.Claim)
		})

		// Leaderboard endpoints
		leaderboardHandler := sp.LeaderboardHandler(ctx)
		r.Route("/leaderboard", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTConfig()))
			rr.Get("/{period}", leaderboardHandler.Get)
		})

		sp.router = r
	}

	return sp.router
}
