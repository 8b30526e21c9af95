package database

import (
	"context"

	"github.com/bhagatankit05/NextHire/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}
	pc.MaxConns = int32(cfg.MaxOpenConns)
	pc.MaxConnLifetime = cfg.MaxConnLife
	return pgxpool.NewWithConfig(ctx, pc)
}
