package rss_db

import (
	"context"
	"fmt"

	"rss-reader/config"
	"rss-reader/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDBConnectionPool opens and pings a pgx pool built from cfg.
func InitDBConnectionPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(BuildConnectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	if cfg.MaxConnections > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConnections)
	}
	if cfg.MinConnections > 0 {
		poolConfig.MinConns = int32(cfg.MinConnections)
	}
	if cfg.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.ConnectionTimeout > 0 {
		poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectionTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Logger.Error("Failed to create connection pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Logger.Error("Failed to ping database", "error", err)
		return nil, err
	}

	logger.Logger.Info("Connected to database",
		"host", cfg.Host,
		"database", cfg.Name,
		"max_conns", poolConfig.MaxConns)

	return pool, nil
}

// BuildConnectionString prefers DATABASE_URL and otherwise assembles a keyword/value DSN.
func BuildConnectionString(cfg config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s search_path=public",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslMode,
	)
}
