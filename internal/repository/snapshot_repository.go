package repository

import (
	"context"

	"github.com/bagdasarian/league-manager/internal/snapshot"
)

// SnapshotRepository хранит снимки всей базы лиг
type SnapshotRepository interface {
	Save(ctx context.Context, snap *snapshot.Snapshot) error
	Load(ctx context.Context) (*snapshot.Snapshot, error)
}
