package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/quybuiquang/skill-quest-cafe/internal/aigen"
	"github.com/quybuiquang/skill-quest-cafe/internal/aigen/gemini"
	"github.com/quybuiquang/skill-quest-cafe/internal/aigen/openai"
	"github.com/quybuiquang/skill-quest-cafe/internal/auth"
	"github.com/quybuiquang/skill-quest-cafe/internal/cache"
	"github.com/quybuiquang/skill-quest-cafe/internal/config"
	"github.com/quybuiquang/skill-quest-cafe/internal/database"
	"github.com/quybuiquang/skill-quest-cafe/internal/handler"
	"github.com/quybuiquang/skill-quest-cafe/internal/logger"
	"github.com/quybuiquang/skill-quest-cafe/internal/repository"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	var generators []aigen.Generator
	if cfg.AI.OpenAIKey != "" {
		generators = append(generators, openai.New(cfg.AI.OpenAIKey, cfg.AI.OpenAIModel))
	}
	if cfg.AI.GeminiKey != "" {
		generators = append(generators, gemini.New(cfg.AI.GeminiKey, cfg.AI.GeminiModel))
	}

	resultCache := buildCache(ctx, cfg, log)

	orchestrator := aigen.NewOrchestrator(
		aigen.Config{
			MaxAttempts: cfg.AI.MaxAttempts,
			BaseDelays: map[aigen.Provider]time.Duration{
				aigen.ProviderOpenAI: cfg.AI.OpenAIRetryDelay,
				aigen.ProviderGemini: cfg.AI.GeminiRetryDelay,
			},
		},
		generators,
		resultCache,
		&repo.GenerationLog,
		defaultProviderFunc(cfg, repo),
		log,
	)

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler: &handler.Handler{
			Logger:          log,
			Repository:      repo,
			TokenMaker:      auth.NewJWTMaker(cfg.JWT.Secret),
			JwtTTL:          cfg.JWT.AccessTokenTTL,
			Orchestrator:    orchestrator,
			GenerateTimeout: cfg.AI.RequestTimeout,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}

// buildCache prefers Redis when an address is configured and reachable,
// otherwise falls back to the in-process cache.
func buildCache(ctx context.Context, cfg *config.Config, log *zap.Logger) aigen.Cache {
	if cfg.Redis.Addr == "" {
		log.Info("no redis configured, using in-memory result cache")
		return cache.NewMemory(cfg.AI.CacheTTL)
	}

	rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx, rdb); err != nil {
		log.Warn("redis unreachable, using in-memory result cache", zap.Error(err))
		return cache.NewMemory(cfg.AI.CacheTTL)
	}

	log.Info("redis result cache connected", zap.String("addr", cfg.Redis.Addr))
	return cache.NewRedis(rdb, cfg.AI.CacheTTL, log)
}

// defaultProviderFunc resolves the default provider per call: the admin
// setting wins, then the environment preference; the orchestrator falls
// back to credential order when neither names a configured provider.
func defaultProviderFunc(cfg *config.Config, repo *repository.Repository) aigen.DefaultFunc {
	return func(ctx context.Context) aigen.Provider {
		if setting, err := repo.Setting.Get(ctx); err == nil && setting.DefaultProvider != "" {
			return aigen.Provider(setting.DefaultProvider)
		}
		return aigen.Provider(cfg.AI.DefaultProvider)
	}
}
