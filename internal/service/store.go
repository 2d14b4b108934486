package service

import (
	"context"

	"github.com/bagdasarian/league-manager/internal/repository"
)

// Store - место, куда редактор сохраняет реестр
type Store interface {
	Save(ctx context.Context, db LeagueDatabase) error
	Load(ctx context.Context, db LeagueDatabase) error
	String() string
}

// FileStore сохраняет в файл с резервными копиями
type FileStore struct {
	Path string
}

func (s FileStore) Save(ctx context.Context, db LeagueDatabase) error {
	return db.Save(ctx, s.Path)
}

func (s FileStore) Load(ctx context.Context, db LeagueDatabase) error {
	return db.Load(ctx, s.Path)
}

func (s FileStore) String() string {
	return "file:" + s.Path
}

// RepositoryStore сохраняет через репозиторий снимков (Postgres, SQLite)
type RepositoryStore struct {
	Name string
	Repo repository.SnapshotRepository
}

func (s RepositoryStore) Save(ctx context.Context, db LeagueDatabase) error {
	return db.SaveTo(ctx, s.Repo)
}

func (s RepositoryStore) Load(ctx context.Context, db LeagueDatabase) error {
	return db.LoadFrom(ctx, s.Repo)
}

func (s RepositoryStore) String() string {
	return s.Name
}
