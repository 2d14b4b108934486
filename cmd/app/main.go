package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/league-manager/internal/config"
	"github.com/bagdasarian/league-manager/internal/db"
	"github.com/bagdasarian/league-manager/internal/domain"
	"github.com/bagdasarian/league-manager/internal/handler"
	"github.com/bagdasarian/league-manager/internal/handler/server"
	"github.com/bagdasarian/league-manager/internal/mail"
	"github.com/bagdasarian/league-manager/internal/repository/file"
	"github.com/bagdasarian/league-manager/internal/repository/postgres"
	"github.com/bagdasarian/league-manager/internal/repository/sqlite"
	"github.com/bagdasarian/league-manager/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	store, closeStore := openStore(cfg)
	defer closeStore()

	leagues := service.Default()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	loadOnStart(ctx, store, leagues, cfg)
	cancel()

	editor := service.NewEditorService(leagues, mail.New(cfg.Mail), store)
	h := handler.NewHandler(editor)
	srv := server.NewServer(h, cfg.HTTP.Addr)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	if err := editor.Save(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("leagues were not saved on shutdown")
	}
}

// openStore выбирает хранилище снимков по LEAGUE_STORE
func openStore(cfg *config.Config) (service.Store, func()) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		database := db.MustLoad(cfg)
		log.Info().Str("host", cfg.Database.Host).Msg("connected to postgres")
		return service.RepositoryStore{Name: "postgres", Repo: postgres.NewSnapshotRepository(database)},
			func() { database.Close() }
	case config.BackendSQLite:
		repo, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.SQLitePath).Msg("failed to open sqlite store")
		}
		return service.RepositoryStore{Name: "sqlite:" + cfg.Storage.SQLitePath, Repo: repo},
			func() { _ = repo.Close() }
	default:
		return service.FileStore{Path: cfg.Storage.Path}, func() {}
	}
}

// savedFileExists учитывает и резервную копию: Load восстанавливается с нее,
// если основного файла нет.
func savedFileExists(path string) bool {
	for _, p := range []string{path, file.PrimaryBackupPath(path)} {
		if _, err := os.Stat(p); !errors.Is(err, os.ErrNotExist) {
			return true
		}
	}
	return false
}

// loadOnStart восстанавливает сохраненные лиги. Отсутствие сохранения не ошибка.
func loadOnStart(ctx context.Context, store service.Store, leagues service.LeagueDatabase, cfg *config.Config) {
	if cfg.Storage.Backend == config.BackendFile && !savedFileExists(cfg.Storage.Path) {
		log.Info().Str("path", cfg.Storage.Path).Msg("no saved leagues, starting empty")
		return
	}
	if err := store.Load(ctx, leagues); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Info().Str("store", store.String()).Msg("no saved leagues, starting empty")
			return
		}
		log.Error().Err(err).Str("store", store.String()).Msg("failed to load leagues, starting empty")
	}
}
