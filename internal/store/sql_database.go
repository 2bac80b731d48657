package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-journal/internal/logger"
)

// DB is the opened database handle shared by all repositories.
type DB struct {
	*sqlx.DB
	errorClassifier *SQLiteErrorClassifier
	logger          *logger.Logger
}

// NewDB wraps an opened connection.
func NewDB(conn *sqlx.DB, log *logger.Logger) *DB {
	return &DB{
		DB:              conn,
		errorClassifier: NewSQLiteErrorClassifier(),
		logger:          log,
	}
}

// EnsureSchema creates the journal tables if they do not exist yet. It is
// idempotent; existing data and columns are left untouched.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.logger.Err(err).
				Str("func", "DB.EnsureSchema").
				Msg("failed to create schema")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	db.logger.Debug().Str("func", "DB.EnsureSchema").Msg("schema is ready")
	return nil
}

// statementError wraps a failed DML statement with the sentinel matching its
// SQLite error class.
func (db *DB) statementError(err error) error {
	switch db.errorClassifier.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrEntryAlreadyExists, err)
	case Busy:
		return fmt.Errorf("%w: %w", ErrDatabaseBusy, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
