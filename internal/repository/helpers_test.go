package repository

import (
	"context"
	"testing"

	"quiz-deck/internal/config"
	"quiz-deck/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance backed by sqlmock.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

// setupSQLiteDB opens a migrated in-memory SQLite database.
func setupSQLiteDB(t *testing.T) *sqlx.DB {
	ctx := context.Background()
	cfg := &config.Config{DB: config.DBConfig{Driver: config.DriverSQLite, DSN: "file::memory:?_pragma=foreign_keys(1)"}}
	db, err := database.Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(ctx, db, config.DriverSQLite, database.Up))
	return db
}
