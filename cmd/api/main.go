package main

import (
	"context"
	"time"

	"github.com/bhagatankit05/NextHire/internal/cache"
	"github.com/bhagatankit05/NextHire/internal/config"
	"github.com/bhagatankit05/NextHire/internal/database"
	"github.com/bhagatankit05/NextHire/internal/groq"
	"github.com/bhagatankit05/NextHire/internal/handler"
	"github.com/bhagatankit05/NextHire/internal/logger"
	"github.com/bhagatankit05/NextHire/internal/repository"
	"github.com/bhagatankit05/NextHire/internal/session"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	DB       *pgxpool.Pool
	Logger   *zap.Logger
	Config   *config.Config
	Handler  *handler.Handler
	Sessions *session.Registry
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, rdb); err != nil {
		sugar.Warnw("redis unavailable, candidate reads will hit the database", "err", err)
	}

	repo := repository.NewRepository(pool)
	registry := session.NewRegistry()
	go registry.RunJanitor(ctx, 10*time.Minute, cfg.Session.IdleTTL)

	h := &handler.Handler{
		Logger:    log,
		Config:    cfg,
		Repo:      repo,
		Gateway:   groq.NewClient(cfg.Groq.APIKey, cfg.Groq.Model, cfg.Groq.Timeout),
		Cache:     cache.NewInterviewCache(rdb, cfg.Redis.TTL),
		Sessions:  registry,
		Submitter: &session.LogSubmitter{Logger: log},
	}

	app := &application{
		DB:       pool,
		Logger:   log,
		Config:   cfg,
		Handler:  h,
		Sessions: registry,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
