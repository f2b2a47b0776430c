package database

import (
	"context"
	"fmt"
	"time"

	"quiz-deck/internal/config"
	"quiz-deck/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver, registers "oracle"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // pure Go SQLite driver, registers "sqlite"
)

func init() {
	// go-ora expects :name placeholders, which sqlx does not know for the "oracle" driver name.
	sqlx.BindDriver(config.DriverOracle, sqlx.NAMED)
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	driver := cfg.DB.Driver
	db, err := sqlx.ConnectContext(ctx, driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	switch driver {
	case config.DriverSQLite:
		// A single connection serializes writers and keeps ":memory:" databases shared.
		db.SetMaxOpenConns(1)
	case config.DriverOracle:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	logger.Get().Info("Connected to database", zap.String("driver", driver))
	return db, nil
}
