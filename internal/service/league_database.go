package service

import (
	"context"

	"github.com/bagdasarian/league-manager/internal/domain"
	"github.com/bagdasarian/league-manager/internal/repository"
)

// LeagueDatabase - реестр лиг процесса с сохранением на диск
type LeagueDatabase interface {
	Leagues() []*domain.League
	AddLeague(league *domain.League) error
	RemoveLeague(league *domain.League)
	LeagueNamed(name string) (*domain.League, bool)
	FindFreeLeagueOID() (int, bool)
	NextOID() int

	Save(ctx context.Context, path string) error
	Load(ctx context.Context, path string) error
	SaveTo(ctx context.Context, repo repository.SnapshotRepository) error
	LoadFrom(ctx context.Context, repo repository.SnapshotRepository) error

	ImportLeagueTeams(league *domain.League, path string) error
	ExportLeagueTeams(league *domain.League, path string) error
}
