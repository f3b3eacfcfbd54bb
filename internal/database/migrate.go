package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"mathdrill/internal/config"
	"mathdrill/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationFiles embed.FS

// Migrator applies the embedded schema migrations
type Migrator interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
	Close() error
}

// NewMigrator returns a migrator for the configured driver. SQLite uses
// golang-migrate; Oracle, which golang-migrate has no driver for, runs the
// .up.sql / .down.sql files statement by statement.
func NewMigrator(driver string, db *sql.DB) (Migrator, error) {
	switch driver {
	case config.DriverSQLite:
		return newSQLiteMigrator(db)
	case config.DriverOracle:
		return &oracleMigrator{db: db}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

type sqliteMigrator struct {
	m *migrate.Migrate
}

func newSQLiteMigrator(db *sql.DB) (*sqliteMigrator, error) {
	src, err := iofs.New(migrationFiles, "migrations/sqlite")
	if err != nil {
		return nil, fmt.Errorf("could not open migration source: %w", err)
	}
	drv, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create sqlite3 migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, config.DriverSQLite, drv)
	if err != nil {
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	return &sqliteMigrator{m: m}, nil
}

func (s *sqliteMigrator) Up() error {
	if err := s.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

func (s *sqliteMigrator) Down() error {
	if err := s.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration down failed: %w", err)
	}
	return nil
}

func (s *sqliteMigrator) Version() (uint, bool, error) {
	v, dirty, err := s.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (s *sqliteMigrator) Close() error {
	srcErr, dbErr := s.m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}

// oracleMigrator executes the embedded scripts in file order without version tracking
type oracleMigrator struct {
	db *sql.DB
}

func (o *oracleMigrator) Up() error {
	return o.run(".up.sql", false)
}

func (o *oracleMigrator) Down() error {
	return o.run(".down.sql", true)
}

// Version is not tracked for Oracle
func (o *oracleMigrator) Version() (uint, bool, error) {
	return 0, false, nil
}

func (o *oracleMigrator) Close() error {
	return nil
}

func (o *oracleMigrator) run(suffix string, reverse bool) error {
	files, err := migrationScripts("migrations/oracle", suffix)
	if err != nil {
		return err
	}
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}

	for _, name := range files {
		content, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for _, stmt := range splitStatements(string(content)) {
			if _, err := o.db.Exec(stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}
	return nil
}

func migrationScripts(dir, suffix string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			files = append(files, dir+"/"+e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// splitStatements splits a script on ';' line endings. go-ora executes one
// statement per call and rejects a trailing semicolon.
func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
