package database

import (
	"fmt"
	"strings"

	"mathdrill/internal/config"
	"mathdrill/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	_ "github.com/sijms/go-ora/v2"  // Oracle driver
	"go.uber.org/zap"
)

func init() {
	// go-ora registers as "oracle", which sqlx does not know; it takes :name binds
	sqlx.BindDriver(config.DriverOracle, sqlx.NAMED)
}

// NewSQLXDB opens and pings a database for the given driver
func NewSQLXDB(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case config.DriverSQLite:
		dsn = sqliteDSN(dsn)
	case config.DriverOracle:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if driver == config.DriverSQLite {
		// a single writer avoids SQLITE_BUSY under concurrent requests
		db.SetMaxOpenConns(1)
	}

	logger.Get().Info("Successfully connected to database", zap.String("driver", driver))
	return db, nil
}

// sqliteDSN enables foreign keys and a busy timeout unless the DSN sets them
func sqliteDSN(dsn string) string {
	params := []string{}
	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(dsn, "_busy_timeout") {
		params = append(params, "_busy_timeout=5000")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}
