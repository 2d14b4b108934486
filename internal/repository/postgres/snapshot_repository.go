package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/league-manager/internal/domain"
	"github.com/bagdasarian/league-manager/internal/snapshot"
	"github.com/google/uuid"
)

type snapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *snapshotRepository {
	return &snapshotRepository{db: db}
}

// Save добавляет новый снимок. Предыдущие строки остаются как история.
func (r *snapshotRepository) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	payload, err := snap.Marshal(snapshot.FormatJSON)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	query := `
		INSERT INTO league_snapshots (id, version, saved_at, payload)
		VALUES ($1, $2, $3, $4)
	`
	_, err = r.db.ExecContext(ctx, query, snap.ID.String(), snap.Version, snap.SavedAt, payload)
	return err
}

// Load возвращает самый свежий снимок
func (r *snapshotRepository) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	query := `
		SELECT id, saved_at, payload
		FROM league_snapshots
		ORDER BY saved_at DESC
		LIMIT 1
	`

	var (
		id      string
		savedAt time.Time
		payload []byte
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&id, &savedAt, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("league snapshot")
		}
		return nil, err
	}

	snap, err := snapshot.Unmarshal(payload, snapshot.FormatJSON)
	if err != nil {
		return nil, err
	}
	if snap.ID != uuid.Nil && snap.ID.String() != id {
		return nil, fmt.Errorf("snapshot %s: payload id mismatch %s", id, snap.ID)
	}
	return snap, nil
}
