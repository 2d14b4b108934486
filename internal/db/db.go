package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bagdasarian/league-manager/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS league_snapshots (
    id UUID PRIMARY KEY,
    version INTEGER NOT NULL,
    saved_at TIMESTAMPTZ NOT NULL,
    payload JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS league_snapshots_saved_at_idx ON league_snapshots (saved_at DESC);
`

func NewPostgres(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema создает таблицу снимков, если ее нет
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createSnapshotsTable); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func MustLoad(cfg *config.Config) *sql.DB {
	db, err := NewPostgres(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to connect to database: %v", err))
	}
	return db
}
