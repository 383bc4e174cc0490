// Package store provides the Postgres seam repos run their SQL through
package store

import (
	"context"
	"errors"
	"fmt"

	"matchmaker/internal/platform/config"
	"matchmaker/internal/platform/logger"
)

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Store is the storage facade; zero value is safe but does nothing
type Store struct {
	Log logger.Logger

	// PG is the postgres seam, nil when disabled
	PG TxRunner
}

// Config configures the store backends
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int
	Migrate     bool
}

// ConfigFromEnv reads PG_* settings through the config layer
func ConfigFromEnv(cfg config.Conf, appName string) Config {
	pg := cfg.Prefix("PG_")
	return Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:     pg.MayBool("ENABLED", true),
			URL:         pg.MayString("URL", ""),
			MaxConns:    int32(pg.MayInt("MAX_CONNS", 8)),
			LogSQL:      pg.MayBool("LOG_SQL", false),
			SlowQueryMs: pg.MayInt("SLOW_MS", 250),
			Migrate:     pg.MayBool("MIGRATE", false),
		},
	}
}

// Open constructs a Store with the configured backends.
// Disabled backends remain nil
func Open(ctx context.Context, cfg Config, log logger.Logger) (*Store, error) {
	s := &Store{Log: log}

	if cfg.PG.Enabled {
		if cfg.PG.URL == "" {
			return nil, errors.New("store: PG_URL is required when postgres is enabled")
		}
		a, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.PG = a
		if cfg.PG.Migrate {
			if err := Migrate(ctx, s.PG); err != nil {
				_ = s.Close(ctx)
				return nil, fmt.Errorf("store: migrate: %w", err)
			}
		}
	}

	return s, nil
}

// Guard verifies the configured seams are reachable
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if s.PG != nil {
		if p, ok := any(s.PG).(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return fmt.Errorf("pg: %w", err)
			}
		}
	}
	return nil
}

// Close closes all initialized backends; nil backends are ignored
func (s *Store) Close(context.Context) error {
	if c, ok := s.PG.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
