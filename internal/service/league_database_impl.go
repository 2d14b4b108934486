package service

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/bagdasarian/league-manager/internal/csvcodec"
	"github.com/bagdasarian/league-manager/internal/domain"
	"github.com/bagdasarian/league-manager/internal/repository"
	"github.com/bagdasarian/league-manager/internal/repository/file"
	"github.com/bagdasarian/league-manager/internal/snapshot"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// MaxBackupHops ограничивает цепочку path.backup.backup... при загрузке
const MaxBackupHops = 3

type leagueDatabase struct {
	leagues []*domain.League
	lastOID int

	clock clockwork.Clock
	newID func() uuid.UUID
}

type Option func(*leagueDatabase)

// WithClock задает часы для отметки времени снимков
func WithClock(clock clockwork.Clock) Option {
	return func(d *leagueDatabase) {
		d.clock = clock
	}
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(d *leagueDatabase) {
		d.newID = newID
	}
}

// NewLeagueDatabase создает пустой реестр
func NewLeagueDatabase(opts ...Option) LeagueDatabase {
	d := &leagueDatabase{
		leagues: make([]*domain.League, 0),
		clock:   clockwork.NewRealClock(),
		newID:   uuid.New,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var (
	defaultOnce sync.Once
	defaultDB   LeagueDatabase
)

// Default лениво создает реестр процесса. Нужен только точке входа,
// остальной код получает реестр явно.
func Default() LeagueDatabase {
	defaultOnce.Do(func() {
		defaultDB = NewLeagueDatabase()
	})
	return defaultDB
}

func (d *leagueDatabase) Leagues() []*domain.League {
	out := make([]*domain.League, len(d.leagues))
	copy(out, d.leagues)
	return out
}

func (d *leagueDatabase) AddLeague(league *domain.League) error {
	for _, l := range d.leagues {
		if domain.SameIdentity(l, league) {
			return domain.NewDuplicateOIDError(domain.KindLeague, league.OID())
		}
	}
	d.leagues = append(d.leagues, league)
	return nil
}

func (d *leagueDatabase) RemoveLeague(league *domain.League) {
	for i, l := range d.leagues {
		if domain.SameIdentity(l, league) {
			d.leagues = append(d.leagues[:i], d.leagues[i+1:]...)
			return
		}
	}
}

func (d *leagueDatabase) LeagueNamed(name string) (*domain.League, bool) {
	for _, l := range d.leagues {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// FindFreeLeagueOID переиспользует OID удаленных лиг
func (d *leagueDatabase) FindFreeLeagueOID() (int, bool) {
	return domain.FindFreeOID(d.leagues)
}

// NextOID никогда не возвращает одно значение дважды
func (d *leagueDatabase) NextOID() int {
	d.lastOID++
	return d.lastOID
}

func (d *leagueDatabase) Save(ctx context.Context, path string) error {
	if err := d.SaveTo(ctx, file.NewSnapshotRepository(path)); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to save league database")
		return domain.NewIOError("save", path, err)
	}
	log.Info().Str("path", path).Int("leagues", len(d.leagues)).Msg("league database saved")
	return nil
}

// Load заменяет состояние реестра снимком из path. При ошибке пробует
// path.backup, не более MaxBackupHops раз.
func (d *leagueDatabase) Load(ctx context.Context, path string) error {
	return d.loadWithFallback(ctx, path, 0)
}

func (d *leagueDatabase) loadWithFallback(ctx context.Context, path string, hop int) error {
	err := d.LoadFrom(ctx, file.NewSnapshotRepository(path))
	if err == nil {
		log.Info().Str("path", path).Int("leagues", len(d.leagues)).Msg("league database loaded")
		return nil
	}
	log.Error().Err(err).Str("path", path).Msg("could not load league database")

	backup := file.PrimaryBackupPath(path)
	if hop >= MaxBackupHops {
		return domain.NewIOError("load", path, err)
	}
	if _, statErr := os.Stat(backup); statErr != nil {
		return domain.NewIOError("load", path, err)
	}
	log.Warn().Str("backup", backup).Msg("loading league database from backup")
	return d.loadWithFallback(ctx, backup, hop+1)
}

func (d *leagueDatabase) SaveTo(ctx context.Context, repo repository.SnapshotRepository) error {
	snap := snapshot.Capture(d.newID(), d.clock.Now(), d.lastOID, d.leagues)
	return repo.Save(ctx, snap)
}

// LoadFrom меняет состояние только при успешном чтении и восстановлении
func (d *leagueDatabase) LoadFrom(ctx context.Context, repo repository.SnapshotRepository) error {
	snap, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	leagues, err := snap.Restore()
	if err != nil {
		return fmt.Errorf("restore snapshot %s: %w", snap.ID, err)
	}
	d.leagues = leagues
	d.lastOID = snap.LastOID
	return nil
}

// ImportLeagueTeams добавляет участников только в уже зарегистрированные
// команды лиги; строки для неизвестных команд пропускаются.
func (d *leagueDatabase) ImportLeagueTeams(league *domain.League, path string) error {
	rows, err := csvcodec.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("error importing league teams")
		return domain.NewIOError("import league teams", path, err)
	}
	for _, row := range rows {
		if _, ok := league.TeamNamed(row.TeamName); !ok {
			log.Warn().
				Str("team", row.TeamName).
				Str("league", league.Name).
				Msg("team not found in league, row skipped")
			continue
		}
		if err := league.ImportRows([]csvcodec.Row{row}); err != nil {
			return err
		}
	}
	return nil
}

// ExportLeagueTeams пишет участников всех команд лиги
func (d *leagueDatabase) ExportLeagueTeams(league *domain.League, path string) error {
	rows := make([]csvcodec.Row, 0)
	for _, t := range league.Teams() {
		rows = append(rows, domain.TeamRows(t)...)
	}
	if err := csvcodec.WriteFile(path, rows); err != nil {
		log.Error().Err(err).Str("path", path).Msg("error exporting league teams")
		return domain.NewIOError("export league teams", path, err)
	}
	return nil
}
