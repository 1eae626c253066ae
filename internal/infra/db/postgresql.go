// Package db manages the PostgreSQL connection used by the repositories.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lifeledger/backend/config"
)

// Database holds the GORM handle and its pool settings.
type Database struct {
	conn *gorm.DB
	cfg  *config.DatabaseConfig
}

// NewPostgresConnection opens a pooled PostgreSQL connection and verifies
// it with a ping before returning.
func NewPostgresConnection(cfg *config.DatabaseConfig) (*Database, error) {
	conn, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	pool, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing sql.DB pool: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	slog.Info("database connected",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	return &Database{conn: conn, cfg: cfg}, nil
}

// DB exposes the GORM handle.
func (d *Database) DB() *gorm.DB {
	return d.conn
}

// HealthCheck reports whether the database answers a short ping.
func (d *Database) HealthCheck() bool {
	pool, err := d.conn.DB()
	if err != nil {
		slog.Error("health check: sql.DB unavailable", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		slog.Error("health check: ping failed", "error", err)
		return false
	}
	return true
}

// Close shuts down the connection pool.
func (d *Database) Close() error {
	pool, err := d.conn.DB()
	if err != nil {
		return fmt.Errorf("accessing sql.DB pool: %w", err)
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("closing database connection: %w", err)
	}
	slog.Info("database connection closed")
	return nil
}

// AutoMigrate runs schema migration for the given models.
func (d *Database) AutoMigrate(models ...interface{}) error {
	if err := d.conn.AutoMigrate(models...); err != nil {
		return fmt.Errorf("running auto-migration: %w", err)
	}
	return nil
}
