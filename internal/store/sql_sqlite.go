package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
)

// NewConnectSQLite opens the database file described by cfg, pings it and
// makes sure the schema exists. The parent directory of the file is created
// if missing.
//
// The pool is capped at one open connection: SQLite allows a single writer
// and one process owns the file.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBDirIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, err
	}

	conn, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("driver", cfg.Driver).Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error pinging DB: %w", err)
	}

	db := NewDB(conn, log)
	if err = db.EnsureSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	log.Debug().
		Str("func", "NewConnectSQLite").
		Str("driver", cfg.Driver).
		Str("dsn", cfg.DSN).
		Msg("connected to database successfully")

	return db, nil
}

func createLocalDBDirIfNotExists(dsn string) error {
	if isInMemoryDSN(dsn) || strings.HasPrefix(dsn, "file:") {
		return nil
	}

	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}
	return nil
}

func isInMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}
