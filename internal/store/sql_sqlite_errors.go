package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result of [SQLiteErrorClassifier.Classify].
type ErrorClassification int

const (
	// Other covers every error not recognised below.
	Other ErrorClassification = iota

	// UniqueViolation is a PRIMARY KEY or UNIQUE constraint failure.
	UniqueViolation

	// Busy means the database file is locked by another connection.
	Busy
)

// SQLiteErrorClassifier maps driver errors of both supported SQLite drivers
// to an [ErrorClassification].
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify inspects err. A mattn/go-sqlite3 error is classified by its
// extended result code. Any other driver error (modernc.org/sqlite) is
// classified by its message.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Other
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch {
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey,
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique:
			return UniqueViolation
		case sqliteErr.Code == sqlite3.ErrBusy, sqliteErr.Code == sqlite3.ErrLocked:
			return Busy
		}
		return Other
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return UniqueViolation
	case strings.Contains(msg, "database is locked"), strings.Contains(msg, "SQLITE_BUSY"):
		return Busy
	}

	return Other
}
