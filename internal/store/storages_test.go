package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

// These tests run against a real database file through the pure-Go driver.

func newFileStorages(t *testing.T) (*Storages, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "data", "journal.db3")

	s := NewStorages(config.Storage{DB: config.DB{DSN: dsn, Driver: config.DriverModernc}}, logger.Nop())
	t.Cleanup(func() { s.Close() })
	return s, dsn
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStorages_OpensLazily(t *testing.T) {
	s, dsn := newFileStorages(t)

	_, err := os.Stat(dsn)
	assert.True(t, os.IsNotExist(err), "database must not exist before first use")

	n, err := s.EntryRepository.GetTotalCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = os.Stat(dsn)
	assert.NoError(t, err)
}

func TestStorages_OpenFailureIsSticky(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// parent "directory" is a regular file
	s := NewStorages(config.Storage{DB: config.DB{
		DSN:    filepath.Join(blocker, "journal.db3"),
		Driver: config.DriverModernc,
	}}, logger.Nop())
	ctx := context.Background()

	_, err := s.EntryRepository.GetTotalCount(ctx)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = s.SecretRepository.CountSecrets(ctx)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestStorages_UpsertKeepsOneRowPerDate(t *testing.T) {
	s, _ := newFileStorages(t)
	ctx := context.Background()

	repo := s.EntryRepository.(*entryRepository)
	first := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	second := first.Add(3 * time.Hour)

	repo.now = func() time.Time { return first }
	id1, err := repo.Upsert(ctx, day(2024, 5, 1), models.EntryInput{Title: "draft", Tags: []string{"a"}})
	require.NoError(t, err)

	repo.now = func() time.Time { return second }
	id2, err := repo.Upsert(ctx, day(2024, 5, 1), models.EntryInput{Title: "final", Tags: []string{"b", "c"}})
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	n, err := repo.GetTotalCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entry, found, err := repo.GetByDate(ctx, day(2024, 5, 1))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, id1, entry.RecordID)
	assert.Equal(t, "final", entry.Title)
	assert.Equal(t, []string{"b", "c"}, entry.Tags)
	assert.Equal(t, []string{}, entry.SecondaryMoods)
	assert.True(t, entry.CreatedAt.Equal(first), "created_at must not change")
	assert.True(t, entry.UpdatedAt.Equal(second), "updated_at must advance")
}

func TestStorages_GetByDateAbsent(t *testing.T) {
	s, _ := newFileStorages(t)

	_, found, err := s.EntryRepository.GetByDate(context.Background(), day(2030, 1, 1))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStorages_RangeRoundTrip(t *testing.T) {
	s, _ := newFileStorages(t)
	ctx := context.Background()
	repo := s.EntryRepository

	// spans a month and a year boundary
	dates := []time.Time{
		day(2023, 12, 30), day(2023, 12, 31), day(2024, 1, 1),
		day(2024, 1, 9), day(2024, 1, 10), day(2024, 2, 1),
	}
	for i := len(dates) - 1; i >= 0; i-- {
		_, err := repo.Upsert(ctx, dates[i], models.EntryInput{Title: models.DateKey(dates[i])})
		require.NoError(t, err)
	}

	got, err := repo.GetEntriesInRange(ctx, day(2023, 12, 31), day(2024, 1, 10))
	require.NoError(t, err)

	keys := make([]string, 0, len(got))
	for _, e := range got {
		keys = append(keys, e.EntryDateKey)
	}
	assert.Equal(t, []string{"2023-12-31", "2024-01-01", "2024-01-09", "2024-01-10"}, keys)

	all, err := repo.GetAllEntryDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, dates, all)
}

func TestStorages_PaginationCoversFilteredResults(t *testing.T) {
	s, _ := newFileStorages(t)
	ctx := context.Background()
	repo := s.EntryRepository

	start := day(2024, 3, 1)
	for i := range 23 {
		mood := "calm"
		if i%3 == 0 {
			mood = "happy"
		}
		_, err := repo.Upsert(ctx, start.AddDate(0, 0, i), models.EntryInput{
			Title:       fmt.Sprintf("day %d", i),
			PrimaryMood: mood,
		})
		require.NoError(t, err)
	}

	filter := models.SearchFilter{Mood: "calm"}
	total, err := repo.SearchCount(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 15, total)

	const limit = 4
	var seen []string
	for offset := 0; offset < total; offset += limit {
		page, err := repo.SearchPaged(ctx, filter, offset, limit)
		require.NoError(t, err)
		for _, e := range page {
			assert.Equal(t, "calm", e.PrimaryMood)
			seen = append(seen, e.EntryDateKey)
		}
	}

	assert.Len(t, seen, total)
	assert.True(t, slices.IsSortedFunc(seen, func(a, b string) int { return strings.Compare(b, a) }),
		"pages must be newest first")
	assert.Len(t, slices.Compact(slices.Clone(seen)), total, "no duplicates")

	// plain paging walks every entry
	var all []string
	for offset := 0; ; offset += limit {
		page, err := repo.GetPaged(ctx, offset, limit)
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}
		for _, e := range page {
			all = append(all, e.EntryDateKey)
		}
	}
	assert.Len(t, all, 23)
}

func TestStorages_SearchSemantics(t *testing.T) {
	s, _ := newFileStorages(t)
	ctx := context.Background()
	repo := s.EntryRepository

	inputs := map[time.Time]models.EntryInput{
		day(2024, 4, 1): {Title: "Museum TRIP", PrimaryMood: "happy", Tags: []string{"art", "city"}},
		day(2024, 4, 2): {Title: "Office", ContentHTML: "<p>a long trip home</p>", PrimaryMood: "tired", Tags: []string{"work"}},
		day(2024, 4, 3): {Title: "Study", PrimaryMood: "happy", Tags: []string{"smart"}},
		day(2024, 4, 4): {Title: "Sale", ContentHTML: "<p>1000 items</p>", PrimaryMood: "happy"},
	}
	for d, in := range inputs {
		_, err := repo.Upsert(ctx, d, in)
		require.NoError(t, err)
	}

	keysOf := func(filter models.SearchFilter) []string {
		t.Helper()
		entries, err := repo.SearchPaged(ctx, filter, 0, 100)
		require.NoError(t, err)
		keys := make([]string, 0, len(entries))
		for _, e := range entries {
			keys = append(keys, e.EntryDateKey)
		}
		return keys
	}

	// case-insensitive over title or content
	assert.Equal(t, []string{"2024-04-02", "2024-04-01"}, keysOf(models.SearchFilter{Search: "trip"}))
	// tag match is a loose substring: "art" also matches "smart"
	assert.Equal(t, []string{"2024-04-03", "2024-04-01"}, keysOf(models.SearchFilter{Tag: "art"}))
	// AND semantics
	assert.Equal(t, []string{"2024-04-03", "2024-04-01"}, keysOf(models.SearchFilter{Mood: "happy", Tag: "art"}))
	assert.Equal(t, []string{"2024-04-01"}, keysOf(models.SearchFilter{Search: "museum", Mood: "happy", Tag: "art"}))
	assert.Empty(t, keysOf(models.SearchFilter{Mood: "tired", Tag: "art"}))
	// wildcards are literal
	assert.Empty(t, keysOf(models.SearchFilter{Search: "10%"}))
	// blank filter returns everything
	assert.Len(t, keysOf(models.SearchFilter{Search: " "}), 4)
}

func TestStorages_DeleteByDate(t *testing.T) {
	s, _ := newFileStorages(t)
	ctx := context.Background()
	repo := s.EntryRepository

	_, err := repo.Upsert(ctx, day(2024, 6, 1), models.EntryInput{Title: "x"})
	require.NoError(t, err)

	n, err := repo.DeleteByDate(ctx, day(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeleteByDate(ctx, day(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestStorages_SecretCardinality(t *testing.T) {
	s, _ := newFileStorages(t)
	ctx := context.Background()
	repo := s.SecretRepository

	n, err := repo.CountSecrets(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, found, err := repo.GetSecretHash(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	for _, h := range []string{"h1", "h2", "h3"} {
		require.NoError(t, repo.ReplaceSecretHash(ctx, h))

		n, err = repo.CountSecrets(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	}

	hash, found, err := repo.GetSecretHash(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "h3", hash)
}

func TestStorages_ConcurrentFirstCallers(t *testing.T) {
	s, _ := newFileStorages(t)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.EntryRepository.GetTotalCount(context.Background())
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestStorages_SchemaIsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "journal.db3")
	cfg := config.Storage{DB: config.DB{DSN: dsn, Driver: config.DriverModernc}}
	ctx := context.Background()

	first := NewStorages(cfg, logger.Nop())
	_, err := first.EntryRepository.Upsert(ctx, day(2024, 1, 1), models.EntryInput{Title: "kept"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := NewStorages(cfg, logger.Nop())
	defer second.Close()

	entry, found, err := second.EntryRepository.GetByDate(ctx, day(2024, 1, 1))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "kept", entry.Title)
}
