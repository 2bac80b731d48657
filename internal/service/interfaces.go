package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// JournalService is the request/response surface over journal entries used
// by front ends. Dates are calendar days; the time of day is ignored.
type JournalService interface {
	// SaveEntry creates or overwrites the entry for date and returns it as
	// stored.
	SaveEntry(ctx context.Context, date time.Time, input models.EntryInput) (models.JournalEntry, error)
	// GetEntry returns the entry for date. found is false if none exists.
	GetEntry(ctx context.Context, date time.Time) (entry models.JournalEntry, found bool, err error)
	// DeleteEntry removes the entry for date and reports whether one existed.
	DeleteEntry(ctx context.Context, date time.Time) (bool, error)
	// ListLatest returns the newest entries. A non-positive limit means the
	// configured page size.
	ListLatest(ctx context.Context, limit int) ([]models.JournalEntry, error)
	// ListPage returns one page of all entries, newest first. A zero limit
	// means the configured page size.
	ListPage(ctx context.Context, page models.PageRequest) (models.Page, error)
	// Search returns one page of the entries matching filter, newest first.
	Search(ctx context.Context, filter models.SearchFilter, page models.PageRequest) (models.Page, error)
	// EntriesInRange returns the entries within the inclusive range, oldest
	// first.
	EntriesInRange(ctx context.Context, dateRange models.DateRange) ([]models.JournalEntry, error)
	// StreakStats computes writing streaks as of today.
	StreakStats(ctx context.Context) (models.StreakStats, error)
}

// AccessService guards the journal with an optional local PIN.
type AccessService interface {
	// HasPin reports whether a PIN has been set.
	HasPin(ctx context.Context) (bool, error)
	// SetPin validates pin and replaces the stored PIN hash with its hash.
	SetPin(ctx context.Context, pin models.Pin) error
	// VerifyPin reports whether pin matches the stored PIN. It is false when
	// no PIN is set or the stored hash is unusable.
	VerifyPin(ctx context.Context, pin models.Pin) (bool, error)
}

// ExportService writes entries to an external document.
type ExportService interface {
	// Export writes the entries within dateRange, or all entries when
	// dateRange is nil, oldest first. It returns the number of entries
	// written.
	Export(ctx context.Context, w io.Writer, format models.ExportFormat, dateRange *models.DateRange) (int, error)
}
