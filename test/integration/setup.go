//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB поднимает Postgres в контейнере и накатывает схему снимков
func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	postgresContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:17.7"),
		postgres.WithDatabase("leagues_test"),
		postgres.WithUsername("league"),
		postgres.WithPassword("league"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	applyMigration(t, db, "000001_init.up.sql")

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return db
}

func applyMigration(t *testing.T, db *sql.DB, name string) {
	var migrationSQL []byte
	var err error

	for _, dir := range []string{filepath.Join("..", ".."), ".", ".."} {
		migrationSQL, err = os.ReadFile(filepath.Join(dir, "migrations", name))
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "не удалось прочитать миграцию %s", name)

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "не удалось применить миграцию %s", name)
}
