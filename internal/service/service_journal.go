// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal/internal/analytics"
	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/validators"
	"github.com/MKhiriev/go-journal/models"
)

type journalService struct {
	entries   store.EntryRepository
	validator validators.Validator
	pageSize  int
	now       func() time.Time

	logger *logger.Logger
}

// NewJournalService constructs a [JournalService] over entries. cfg.PageSize
// is the limit used when a caller does not pass one.
func NewJournalService(entries store.EntryRepository, cfg config.App, logger *logger.Logger) JournalService {
	return &journalService{
		entries:   entries,
		validator: validators.NewJournalValidator(),
		pageSize:  cfg.PageSize,
		now:       time.Now,
		logger:    logger,
	}
}

// ParseDate parses a "YYYY-MM-DD" date key. Malformed keys are reported as
// [ErrInvalidDataProvided].
func ParseDate(key string) (time.Time, error) {
	date, err := models.ParseDateKey(key)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return date, nil
}

func (s *journalService) SaveEntry(ctx context.Context, date time.Time, input models.EntryInput) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if err := s.validateDate(ctx, date); err != nil {
		return models.JournalEntry{}, err
	}
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	input = normalizeInput(input)

	recordID, err := s.entries.Upsert(ctx, date, input)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("error saving entry: %w", err)
	}

	entry, found, err := s.entries.GetByDate(ctx, date)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("error reading saved entry: %w", err)
	}
	if !found {
		return models.JournalEntry{}, ErrEntryNotSaved
	}

	log.Info().
		Str("func", "journalService.SaveEntry").
		Str("date", entry.EntryDateKey).
		Int64("record_id", recordID).
		Msg("entry saved")

	return entry, nil
}

func (s *journalService) GetEntry(ctx context.Context, date time.Time) (models.JournalEntry, bool, error) {
	if err := s.validateDate(ctx, date); err != nil {
		return models.JournalEntry{}, false, err
	}

	entry, found, err := s.entries.GetByDate(ctx, date)
	if err != nil {
		return models.JournalEntry{}, false, fmt.Errorf("error getting entry: %w", err)
	}
	return entry, found, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, date time.Time) (bool, error) {
	if err := s.validateDate(ctx, date); err != nil {
		return false, err
	}

	deleted, err := s.entries.DeleteByDate(ctx, date)
	if err != nil {
		return false, fmt.Errorf("error deleting entry: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "journalService.DeleteEntry").
		Str("date", models.DateKey(date)).
		Int64("deleted", deleted).
		Msg("entry delete requested")

	return deleted > 0, nil
}

func (s *journalService) ListLatest(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	if limit <= 0 {
		limit = s.pageSize
	}

	entries, err := s.entries.GetLatest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing latest entries: %w", err)
	}
	return entries, nil
}

func (s *journalService) ListPage(ctx context.Context, page models.PageRequest) (models.Page, error) {
	page, err := s.preparePage(ctx, page)
	if err != nil {
		return models.Page{}, err
	}

	total, err := s.entries.GetTotalCount(ctx)
	if err != nil {
		return models.Page{}, fmt.Errorf("error counting entries: %w", err)
	}

	entries, err := s.entries.GetPaged(ctx, page.Offset, page.Limit)
	if err != nil {
		return models.Page{}, fmt.Errorf("error listing entries: %w", err)
	}

	return models.Page{Entries: entries, Total: total, Offset: page.Offset, Limit: page.Limit}, nil
}

func (s *journalService) Search(ctx context.Context, filter models.SearchFilter, page models.PageRequest) (models.Page, error) {
	page, err := s.preparePage(ctx, page)
	if err != nil {
		return models.Page{}, err
	}

	total, err := s.entries.SearchCount(ctx, filter)
	if err != nil {
		return models.Page{}, fmt.Errorf("error counting matching entries: %w", err)
	}

	entries, err := s.entries.SearchPaged(ctx, filter, page.Offset, page.Limit)
	if err != nil {
		return models.Page{}, fmt.Errorf("error searching entries: %w", err)
	}

	return models.Page{Entries: entries, Total: total, Offset: page.Offset, Limit: page.Limit}, nil
}

func (s *journalService) EntriesInRange(ctx context.Context, dateRange models.DateRange) ([]models.JournalEntry, error) {
	if err := s.validator.Validate(ctx, dateRange); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	entries, err := s.entries.GetEntriesInRange(ctx, dateRange.From, dateRange.To)
	if err != nil {
		return nil, fmt.Errorf("error getting entries in range: %w", err)
	}
	return entries, nil
}

// StreakStats feeds every stored date to [analytics.CalculateStreaks] with
// the current local day as today.
func (s *journalService) StreakStats(ctx context.Context) (models.StreakStats, error) {
	dates, err := s.entries.GetAllEntryDates(ctx)
	if err != nil {
		return models.StreakStats{}, fmt.Errorf("error getting entry dates: %w", err)
	}

	stats := analytics.CalculateStreaks(dates, s.now())

	logger.FromContext(ctx).Debug().
		Str("func", "journalService.StreakStats").
		Int("dates", len(dates)).
		Int("current", stats.Current).
		Int("longest", stats.Longest).
		Int("missed", stats.Missed).
		Msg("streaks calculated")

	return stats, nil
}

// preparePage fills the default limit and validates the request.
func (s *journalService) preparePage(ctx context.Context, page models.PageRequest) (models.PageRequest, error) {
	if page.Limit == 0 {
		page.Limit = s.pageSize
	}
	if err := s.validator.Validate(ctx, page); err != nil {
		return page, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return page, nil
}

// validateDate rejects the zero time and days whose key would not sort in
// date order.
func (s *journalService) validateDate(ctx context.Context, date time.Time) error {
	if err := s.validator.Validate(ctx, date); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// normalizeInput replaces nil lists with empty ones.
func normalizeInput(in models.EntryInput) models.EntryInput {
	if in.SecondaryMoods == nil {
		in.SecondaryMoods = []string{}
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	return in
}
