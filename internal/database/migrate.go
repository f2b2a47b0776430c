package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"quiz-deck/internal/config"
	"quiz-deck/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationFS embed.FS

// Direction selects which migration files are applied.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection validates a direction given on the command line.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(s)); d {
	case Up, Down:
		return d, nil
	default:
		return "", fmt.Errorf("invalid migration direction %q, want up or down", s)
	}
}

// RunMigrations applies the embedded schema for driver in the given direction.
func RunMigrations(ctx context.Context, db *sqlx.DB, driver string, dir Direction) error {
	switch driver {
	case config.DriverSQLite:
		return runSQLiteMigrations(db, dir)
	case config.DriverOracle:
		return runSequentialMigrations(ctx, db, config.DriverOracle, dir)
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}
}

func runSQLiteMigrations(db *sqlx.DB, dir Direction) error {
	src, err := iofs.New(migrationFS, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("could not open migration source: %w", err)
	}
	target, err := sqlite.WithInstance(db.DB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration target: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, config.DriverSQLite, target)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	if dir == Down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Get().Info("Database schema is up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", dir, err)
	}

	version, dirty, _ := m.Version()
	logger.Get().Info("Migrations completed",
		zap.String("direction", string(dir)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

// runSequentialMigrations executes every *.<dir>.sql file of the dialect directory in order,
// ascending for up and descending for down. Versions already applied are recorded in
// schema_migrations and skipped.
func runSequentialMigrations(ctx context.Context, db *sqlx.DB, dialect string, dir Direction) error {
	root := path.Join("migrations", dialect)
	files, err := migrationFiles(migrationFS, root, dir)
	if err != nil {
		return err
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	for _, name := range files {
		version := strings.SplitN(name, "_", 2)[0]
		if (dir == Up) == applied[version] {
			continue
		}

		content, err := fs.ReadFile(migrationFS, path.Join(root, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}

		record := `INSERT INTO schema_migrations (version) VALUES (?)`
		if dir == Down {
			record = `DELETE FROM schema_migrations WHERE version = ?`
		}
		if _, err := db.ExecContext(ctx, db.Rebind(record), version); err != nil {
			return fmt.Errorf("could not record migration %s: %w", name, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed", zap.String("direction", string(dir)))
	return nil
}

func appliedVersions(ctx context.Context, db *sqlx.DB) (map[string]bool, error) {
	var versions []string
	err := db.SelectContext(ctx, &versions, `SELECT version FROM schema_migrations`)
	if err != nil {
		// First run: create the bookkeeping table.
		if _, cerr := db.ExecContext(ctx, `CREATE TABLE schema_migrations (version VARCHAR2(32) PRIMARY KEY)`); cerr != nil {
			return nil, fmt.Errorf("could not read schema_migrations: %w", err)
		}
	}
	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

func migrationFiles(fsys fs.FS, root string, dir Direction) ([]string, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}
	suffix := "." + string(dir) + ".sql"
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	if dir == Down {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}
	return files, nil
}

// SplitStatements splits a script on semicolons, dropping blanks and "--" comment lines.
// Drivers such as go-ora reject a trailing semicolon or more than one statement per Exec.
func SplitStatements(script string) []string {
	var b strings.Builder
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	var stmts []string
	for _, s := range strings.Split(b.String(), ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
