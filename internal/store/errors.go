package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned by every operation of a store whose
	// database could not be opened or initialised. It is sticky for the
	// lifetime of the [Storages] value.
	ErrStorageUnavailable = errors.New("storage is unavailable")

	// ErrEntryAlreadyExists is returned when an insert collides with an
	// existing entry for the same date key.
	ErrEntryAlreadyExists = errors.New("entry for this date already exists")

	// ErrInvalidStoredDate is returned when a stored date key cannot be
	// parsed back into a date.
	ErrInvalidStoredDate = errors.New("stored date key is invalid")

	// ErrDatabaseBusy is returned when a write fails because the database
	// file is locked by another connection.
	ErrDatabaseBusy = errors.New("database is busy")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan journal row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan journal rows")
)
