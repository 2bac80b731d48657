package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntryRepository persists journal entries, one per calendar day. Dates are
// reduced to their date key; the time of day is ignored.
type EntryRepository interface {
	// Upsert creates the entry for date or overwrites its mutable fields.
	// It returns the row identifier of the entry.
	Upsert(ctx context.Context, date time.Time, input models.EntryInput) (int64, error)
	// GetByDate returns the entry for date. found is false if none exists.
	GetByDate(ctx context.Context, date time.Time) (entry models.JournalEntry, found bool, err error)
	// GetLatest returns at most limit entries, newest date first.
	GetLatest(ctx context.Context, limit int) ([]models.JournalEntry, error)
	// GetPaged returns the window [offset, offset+limit) of all entries,
	// newest date first.
	GetPaged(ctx context.Context, offset, limit int) ([]models.JournalEntry, error)
	// GetTotalCount returns the number of stored entries.
	GetTotalCount(ctx context.Context) (int, error)
	// SearchPaged returns the window [offset, offset+limit) of the entries
	// matching filter, newest date first.
	SearchPaged(ctx context.Context, filter models.SearchFilter, offset, limit int) ([]models.JournalEntry, error)
	// SearchCount returns the number of entries matching filter.
	SearchCount(ctx context.Context, filter models.SearchFilter) (int, error)
	// GetAllEntryDates returns the date of every entry in ascending order.
	GetAllEntryDates(ctx context.Context) ([]time.Time, error)
	// GetEntriesInRange returns entries dated within [from, to], oldest first.
	GetEntriesInRange(ctx context.Context, from, to time.Time) ([]models.JournalEntry, error)
	// DeleteByDate removes the entry for date and returns the number of rows
	// removed, 0 or 1.
	DeleteByDate(ctx context.Context, date time.Time) (int64, error)
}

// SecretRepository stores the single local-access PIN hash.
type SecretRepository interface {
	// CountSecrets returns the number of stored secret rows.
	CountSecrets(ctx context.Context) (int, error)
	// GetSecretHash returns the stored hash. found is false if none exists.
	GetSecretHash(ctx context.Context) (hash string, found bool, err error)
	// ReplaceSecretHash removes every stored secret and stores hash, atomically.
	ReplaceSecretHash(ctx context.Context, hash string) error
}
