package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/validators"
	"github.com/MKhiriev/go-journal/models"
)

// allDays spans every day a stored key can name.
var allDays = models.DateRange{
	From: time.Date(validators.MinDateYear, time.January, 1, 0, 0, 0, 0, time.UTC),
	To:   time.Date(validators.MaxDateYear, time.December, 31, 0, 0, 0, 0, time.UTC),
}

type exportService struct {
	entries   store.EntryRepository
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewExportService(entries store.EntryRepository, logger *logger.Logger) ExportService {
	return &exportService{
		entries:   entries,
		validator: validators.NewJournalValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (e *exportService) Export(ctx context.Context, w io.Writer, format models.ExportFormat, dateRange *models.DateRange) (int, error) {
	log := logger.FromContext(ctx)

	if format != models.ExportJSON && format != models.ExportYAML {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, format)
	}

	doc := models.ExportDocument{ExportedAt: e.now().UTC()}

	var err error
	if dateRange != nil {
		if err = e.validator.Validate(ctx, *dateRange); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		doc.From, doc.To = dateRange.Keys()
		doc.Entries, err = e.entries.GetEntriesInRange(ctx, dateRange.From, dateRange.To)
	} else {
		doc.Entries, err = e.allEntries(ctx)
	}
	if err != nil {
		return 0, fmt.Errorf("error reading entries for export: %w", err)
	}
	if doc.Entries == nil {
		doc.Entries = []models.JournalEntry{}
	}
	doc.Count = len(doc.Entries)

	if err = encode(w, format, doc); err != nil {
		log.Err(err).Str("func", "exportService.Export").Str("format", string(format)).Msg("failed to write export")
		return 0, err
	}

	log.Info().
		Str("func", "exportService.Export").
		Str("format", string(format)).
		Int("count", doc.Count).
		Msg("entries exported")

	return doc.Count, nil
}

// allEntries returns every entry, oldest first, in a single read.
func (e *exportService) allEntries(ctx context.Context) ([]models.JournalEntry, error) {
	return e.entries.GetEntriesInRange(ctx, allDays.From, allDays.To)
}

func encode(w io.Writer, format models.ExportFormat, doc models.ExportDocument) error {
	switch format {
	case models.ExportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		return nil
	}
}
