package app

import (
	"context"
	"net/http"
	accountAPI "slot_engine/internal/api/account"
	slotAPI "slot_engine/internal/api/slot"
	"slot_engine/internal/config"
	"slot_engine/internal/config/env"
	"slot_engine/internal/jobs"
	"slot_engine/internal/middleware"
	"slot_engine/internal/repository"
	"slot_engine/internal/repository/account_mem_repo"
	"slot_engine/internal/repository/account_redis_repo"
	"slot_engine/internal/repository/account_repo"
	"slot_engine/internal/repository/history_mem_repo"
	"slot_engine/internal/repository/history_redis_repo"
	"slot_engine/internal/repository/history_repo"
	"slot_engine/internal/repository/rtp_repo"
	"slot_engine/internal/repository/schema"
	"slot_engine/internal/service"
	"slot_engine/internal/service/ledger"
	"slot_engine/internal/service/slot"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klauspost/compress/gzhttp"
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

	// Store and ledger bits
	storeCfg    config.StoreConfig
	ledgerCfg   config.LedgerConfig
	accountRepo repository.AccountRepository
	historyRepo repository.SpinHistoryRepository
	ledgerServ  service.LedgerService
	accountHand *accountAPI.Handler

	// Slot bits
	machines config.MachineRegistry
	statsCfg config.StatsConfig
	rtpRepo  repository.RTPRepository
	slotServ service.SlotService
	slotHand *slotAPI.Handler

	scheduler *jobs.Scheduler

	// Router and HTTP config
	logCfg  config.LogConfig
	jwtCfg  config.JWTConfig
	httpCfg config.HTTPConfig
	router  http.Handler
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) StoreCfg() config.StoreConfig {
	if sp.storeCfg == nil {
		cfg, err := env.NewStoreConfig()
		if err != nil {
			panic("failed to get store config: " + err.Error())
		}
		sp.storeCfg = cfg
	}
	return sp.storeCfg
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
		err = schema.EnsureSchema(ctx, dbc)
		if err != nil {
			panic("failed to prepare db schema: " + err.Error())
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
		cfg := sp.RedisConfig()
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) AccountRepository(ctx context.Context) repository.AccountRepository {
	if sp.accountRepo == nil {
		switch sp.StoreCfg().Driver() {
		case env.StoreDriverRedis:
			sp.accountRepo = account_redis_repo.NewAccountRepository(sp.RedisClient(ctx))
		case env.StoreDriverMemory:
			sp.accountRepo = account_mem_repo.NewAccountRepository()
		default:
			sp.accountRepo = account_repo.NewAccountRepository(sp.DBClient(ctx), sp.TXManager(ctx))
		}
	}
	return sp.accountRepo
}

func (sp *ServiceProvider) HistoryRepository(ctx context.Context) repository.SpinHistoryRepository {
	if sp.historyRepo == nil {
		switch sp.StoreCfg().Driver() {
		case env.StoreDriverRedis:
			sp.historyRepo = history_redis_repo.NewSpinHistoryRepository(sp.RedisClient(ctx), sp.StatsCfg().HistoryLimit())
		case env.StoreDriverMemory:
			sp.historyRepo = history_mem_repo.NewSpinHistoryRepository(sp.StatsCfg().HistoryLimit())
		default:
			sp.historyRepo = history_repo.NewSpinHistoryRepository(sp.DBClient(ctx))
		}
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) LedgerCfg() config.LedgerConfig {
	if sp.ledgerCfg == nil {
		cfg, err := env.NewLedgerConfig()
		if err != nil {
			panic("failed to get ledger config: " + err.Error())
		}
		sp.ledgerCfg = cfg
	}
	return sp.ledgerCfg
}

func (sp *ServiceProvider) LedgerService(ctx context.Context) service.LedgerService {
	if sp.ledgerServ == nil {
		sp.ledgerServ = ledger.NewLedgerService(ledger.Deps{
			Repo: sp.AccountRepository(ctx),
			Cfg:  sp.LedgerCfg(),
		})
	}
	return sp.ledgerServ
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{
			Serv: sp.LedgerService(ctx),
		})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) Machines() config.MachineRegistry {
	if sp.machines == nil {
		reg, err := env.NewMachineRegistryFromYAML()
		if err != nil {
			panic("failed to get machines config: " + err.Error())
		}
		sp.machines = reg
	}
	return sp.machines
}

func (sp *ServiceProvider) StatsCfg() config.StatsConfig {
	if sp.statsCfg == nil {
		cfg, err := env.NewStatsConfig()
		if err != nil {
			panic("failed to get stats config: " + err.Error())
		}
		sp.statsCfg = cfg
	}
	return sp.statsCfg
}

func (sp *ServiceProvider) RTPRepository() repository.RTPRepository {
	if sp.rtpRepo == nil {
		sp.rtpRepo = rtp_repo.NewRTPRepository(sp.StatsCfg().RTPWindow())
	}
	return sp.rtpRepo
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(slot.Deps{
			Machines: sp.Machines(),
			Ledger:   sp.LedgerService(ctx),
			History:  sp.HistoryRepository(ctx),
			RTP:      sp.RTPRepository(),
			StatsCfg: sp.StatsCfg(),
		})
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{Serv: sp.SlotService(ctx)})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) Scheduler() *jobs.Scheduler {
	if sp.scheduler == nil {
		sp.scheduler = jobs.NewScheduler(sp.RTPRepository(), sp.StatsCfg().RTPReportSchedule())
	}
	return sp.scheduler
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
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

func (sp *ServiceProvider) Router(ctx context.Context) http.Handler {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.Logger)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		slotHandler := sp.SlotHandler(ctx)
		accountHandler := sp.AccountHandler(ctx)

		r.Get("/machines", slotHandler.Machines)

		// Endpoints игрока, нужен access токен
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

			rr.Post("/accounts", accountHandler.Open)
			rr.Get("/accounts/me", accountHandler.Me)
			rr.Post("/bonus/daily", accountHandler.ClaimDailyBonus)
			rr.Post("/machines/{machine}/spin", slotHandler.Spin)
			rr.Get("/stats", slotHandler.Stats)
		})

		sp.router = gzhttp.GzipHandler(r)
	}

	return sp.router
}

// Close закрывает соединения с хранилищами
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
}
