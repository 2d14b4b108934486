package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bagdasarian/league-manager/internal/domain"
	"github.com/bagdasarian/league-manager/internal/snapshot"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS league_snapshots (
    id TEXT PRIMARY KEY,
    version INTEGER NOT NULL,
    saved_at INTEGER NOT NULL,
    payload TEXT NOT NULL
);
`

type SnapshotRepository struct {
	db *sql.DB
}

// Open открывает файл SQLite и создает таблицу снимков.
// ":memory:" открывает базу в памяти.
func Open(path string) (*SnapshotRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=synchronous(FULL)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// одно соединение: иначе каждая сессия ":memory:" видит свою базу
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SnapshotRepository{db: db}, nil
}

func (r *SnapshotRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SnapshotRepository) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	payload, err := snap.Marshal(snapshot.FormatJSON)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO league_snapshots (id, version, saved_at, payload) VALUES (?, ?, ?, ?)`,
		snap.ID.String(), snap.Version, toMillis(snap.SavedAt), string(payload),
	)
	return err
}

func (r *SnapshotRepository) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM league_snapshots ORDER BY saved_at DESC, rowid DESC LIMIT 1`,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("league snapshot")
		}
		return nil, err
	}
	return snapshot.Unmarshal([]byte(payload), snapshot.FormatJSON)
}

// Count - число сохраненных снимков
func (r *SnapshotRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM league_snapshots`).Scan(&n)
	return n, err
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}
