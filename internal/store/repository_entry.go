// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

// timestampLayout is the stored form of created_at and updated_at.
const timestampLayout = time.RFC3339Nano

// entryRow is one row of journal_entries as selected by [entryColumns].
type entryRow struct {
	RecordID       int64  `db:"record_id"`
	EntryDateKey   string `db:"entry_date_key"`
	CreatedAt      string `db:"created_at"`
	UpdatedAt      string `db:"updated_at"`
	Title          string `db:"title"`
	ContentHTML    string `db:"content_html"`
	PrimaryMood    string `db:"primary_mood"`
	SecondaryMoods string `db:"secondary_moods_csv"`
	Tags           string `db:"tags_csv"`
}

func (r entryRow) toModel() (models.JournalEntry, error) {
	createdAt, err := time.Parse(timestampLayout, r.CreatedAt)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("created_at of %s: %w", r.EntryDateKey, err)
	}
	updatedAt, err := time.Parse(timestampLayout, r.UpdatedAt)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("updated_at of %s: %w", r.EntryDateKey, err)
	}

	return models.JournalEntry{
		RecordID:       r.RecordID,
		EntryDateKey:   r.EntryDateKey,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		Title:          r.Title,
		ContentHTML:    r.ContentHTML,
		PrimaryMood:    r.PrimaryMood,
		SecondaryMoods: models.SplitList(r.SecondaryMoods),
		Tags:           models.SplitList(r.Tags),
	}, nil
}

// entryRepository is the SQLite implementation of [EntryRepository].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] and logs failures with the date key involved.
type entryRepository struct {
	conn   *connector
	now    func() time.Time
	logger *logger.Logger
}

// newEntryRepository constructs an [EntryRepository] that opens its database
// through conn on first use.
func newEntryRepository(conn *connector, logger *logger.Logger) *entryRepository {
	return &entryRepository{
		conn:   conn,
		now:    time.Now,
		logger: logger,
	}
}

// Upsert looks the date key up and then inserts or updates inside a single
// transaction. created_at is written only on insert.
func (r *entryRepository) Upsert(ctx context.Context, date time.Time, input models.EntryInput) (int64, error) {
	log := logger.FromContext(ctx)
	key := models.DateKey(date)

	db, err := r.conn.get(ctx)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.Upsert").Str("date", key).Msg("storage unavailable")
		return 0, err
	}

	now := r.now().UTC().Format(timestampLayout)

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.Upsert").Str("date", key).Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var recordID int64
	err = tx.GetContext(ctx, &recordID, getEntryRowID, key)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, insertErr := tx.ExecContext(ctx, insertEntry,
			key,
			now,
			now,
			input.Title,
			input.ContentHTML,
			input.PrimaryMood,
			models.JoinList(input.SecondaryMoods),
			models.JoinList(input.Tags),
		)
		if insertErr != nil {
			log.Err(insertErr).Str("func", "entryRepository.Upsert").Str("date", key).Msg("failed to insert entry")
			return 0, db.statementError(insertErr)
		}

		recordID, err = res.LastInsertId()
		if err != nil {
			log.Err(err).Str("func", "entryRepository.Upsert").Str("date", key).Msg("failed to read inserted row id")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

	case err != nil:
		log.Err(err).Str("func", "entryRepository.Upsert").Str("date", key).Msg("failed to look up entry")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)

	default:
		_, err = tx.ExecContext(ctx, updateEntry,
			now,
			input.Title,
			input.ContentHTML,
			input.PrimaryMood,
			models.JoinList(input.SecondaryMoods),
			models.JoinList(input.Tags),
			key,
		)
		if err != nil {
			log.Err(err).Str("func", "entryRepository.Upsert").Str("date", key).Msg("failed to update entry")
			return 0, db.statementError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "entryRepository.Upsert").Str("date", key).Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "entryRepository.Upsert").
		Str("date", key).
		Int64("record_id", recordID).
		Msg("entry saved")

	return recordID, nil
}

func (r *entryRepository) GetByDate(ctx context.Context, date time.Time) (models.JournalEntry, bool, error) {
	log := logger.FromContext(ctx)
	key := models.DateKey(date)

	db, err := r.conn.get(ctx)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.GetByDate").Str("date", key).Msg("storage unavailable")
		return models.JournalEntry{}, false, err
	}

	var row entryRow
	err = db.QueryRowxContext(ctx, getEntryByDate, key).StructScan(&row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JournalEntry{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "entryRepository.GetByDate").Str("date", key).Msg("failed to get entry")
		return models.JournalEntry{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	entry, err := row.toModel()
	if err != nil {
		log.Err(err).Str("func", "entryRepository.GetByDate").Str("date", key).Msg("failed to decode entry row")
		return models.JournalEntry{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, true, nil
}

func (r *entryRepository) GetLatest(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	return r.queryEntries(ctx, "entryRepository.GetLatest", getLatestEntries, limit)
}

func (r *entryRepository) GetPaged(ctx context.Context, offset, limit int) ([]models.JournalEntry, error) {
	query, args, err := buildGetPagedQuery(offset, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entryRepository.GetPaged").
			Int("offset", offset).
			Int("limit", limit).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEntries(ctx, "entryRepository.GetPaged", query, args...)
}

func (r *entryRepository) GetTotalCount(ctx context.Context) (int, error) {
	return r.count(ctx, "entryRepository.GetTotalCount", countEntries)
}

func (r *entryRepository) SearchPaged(ctx context.Context, filter models.SearchFilter, offset, limit int) ([]models.JournalEntry, error) {
	query, args, err := buildSearchPagedQuery(filter, offset, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entryRepository.SearchPaged").
			Int("offset", offset).
			Int("limit", limit).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEntries(ctx, "entryRepository.SearchPaged", query, args...)
}

func (r *entryRepository) SearchCount(ctx context.Context, filter models.SearchFilter) (int, error) {
	query, args, err := buildSearchCountQuery(filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entryRepository.SearchCount").
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.count(ctx, "entryRepository.SearchCount", query, args...)
}

func (r *entryRepository) GetAllEntryDates(ctx context.Context) ([]time.Time, error) {
	log := logger.FromContext(ctx)

	db, err := r.conn.get(ctx)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.GetAllEntryDates").Msg("storage unavailable")
		return nil, err
	}

	var keys []string
	if err = db.SelectContext(ctx, &keys, getAllEntryDateKeys); err != nil {
		log.Err(err).Str("func", "entryRepository.GetAllEntryDates").Msg("failed to select date keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	dates := make([]time.Time, 0, len(keys))
	for _, key := range keys {
		date, parseErr := models.ParseDateKey(key)
		if parseErr != nil {
			log.Err(parseErr).Str("func", "entryRepository.GetAllEntryDates").Str("date", key).Msg("invalid stored date key")
			return nil, fmt.Errorf("%w: %w", ErrInvalidStoredDate, parseErr)
		}
		dates = append(dates, date)
	}

	return dates, nil
}

// GetEntriesInRange compares date keys as strings, which matches date order.
func (r *entryRepository) GetEntriesInRange(ctx context.Context, from, to time.Time) ([]models.JournalEntry, error) {
	return r.queryEntries(ctx, "entryRepository.GetEntriesInRange", getEntriesInRange,
		models.DateKey(from), models.DateKey(to))
}

func (r *entryRepository) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	log := logger.FromContext(ctx)
	key := models.DateKey(date)

	db, err := r.conn.get(ctx)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.DeleteByDate").Str("date", key).Msg("storage unavailable")
		return 0, err
	}

	res, err := db.ExecContext(ctx, deleteEntryByDate, key)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.DeleteByDate").Str("date", key).Msg("failed to delete entry")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "entryRepository.DeleteByDate").Str("date", key).Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "entryRepository.DeleteByDate").
		Str("date", key).
		Int64("deleted", deleted).
		Msg("entry delete executed")

	return deleted, nil
}

// queryEntries runs a SELECT over [entryColumns] and decodes every row.
// It never returns a nil slice on success.
func (r *entryRepository) queryEntries(ctx context.Context, funcName, query string, args ...any) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	db, err := r.conn.get(ctx)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("storage unavailable")
		return nil, err
	}

	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for getting entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var row entryRow
		if scanErr := rows.StructScan(&row); scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entry, decodeErr := row.toModel()
		if decodeErr != nil {
			log.Err(decodeErr).Str("func", funcName).Str("date", row.EntryDateKey).Msg("failed to decode entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, decodeErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (r *entryRepository) count(ctx context.Context, funcName, query string, args ...any) (int, error) {
	log := logger.FromContext(ctx)

	db, err := r.conn.get(ctx)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("storage unavailable")
		return 0, err
	}

	var n int
	if err = db.GetContext(ctx, &n, query, args...); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to count entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}
