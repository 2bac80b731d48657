package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/mock"
	"github.com/MKhiriev/go-journal/models"
)

var exportNow = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

func newTestExportSvc(t *testing.T) (*exportService, *mock.MockEntryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	entries := mock.NewMockEntryRepository(ctrl)

	svc := NewExportService(entries, logger.Nop()).(*exportService)
	svc.now = func() time.Time { return exportNow }
	return svc, entries
}

func exportEntries() []models.JournalEntry {
	return []models.JournalEntry{
		{
			EntryDateKey:   "2024-03-05",
			CreatedAt:      exportNow,
			UpdatedAt:      exportNow,
			Title:          "First",
			ContentHTML:    "<p>a</p>",
			PrimaryMood:    "happy",
			SecondaryMoods: []string{"calm"},
			Tags:           []string{"x", "y"},
		},
		{
			EntryDateKey:   "2024-03-06",
			CreatedAt:      exportNow,
			UpdatedAt:      exportNow,
			Title:          "Second",
			SecondaryMoods: []string{},
			Tags:           []string{},
		},
	}
}

func TestExportService_JSONRange(t *testing.T) {
	svc, entries := newTestExportSvc(t)
	ctx := context.Background()

	entries.EXPECT().GetEntriesInRange(ctx, mar5, mar6).Return(exportEntries(), nil)

	var buf bytes.Buffer
	n, err := svc.Export(ctx, &buf, models.ExportJSON, &models.DateRange{From: mar5, To: mar6})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var doc models.ExportDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "2024-03-05", doc.From)
	assert.Equal(t, "2024-03-06", doc.To)
	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, []string{"x", "y"}, doc.Entries[0].Tags)
	assert.Contains(t, buf.String(), `"content_html": "<p>a</p>"`, "html is written as is")
	assert.NotContains(t, buf.String(), "record_id")
}

func TestExportService_YAMLAllOldestFirst(t *testing.T) {
	svc, entries := newTestExportSvc(t)
	ctx := context.Background()

	firstDay := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	entries.EXPECT().GetEntriesInRange(ctx, firstDay, lastDay).Return(exportEntries(), nil)

	var buf bytes.Buffer
	n, err := svc.Export(ctx, &buf, models.ExportYAML, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var doc struct {
		Count   int `yaml:"count"`
		Entries []struct {
			Date string   `yaml:"date"`
			Tags []string `yaml:"tags"`
		} `yaml:"entries"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc.Count)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, "2024-03-05", doc.Entries[0].Date)
	assert.Equal(t, "2024-03-06", doc.Entries[1].Date)
	assert.Equal(t, []string{"x", "y"}, doc.Entries[0].Tags)
	assert.NotContains(t, buf.String(), "from:")
}

func TestExportService_EmptyJournal(t *testing.T) {
	svc, entries := newTestExportSvc(t)
	ctx := context.Background()

	entries.EXPECT().GetEntriesInRange(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

	var buf bytes.Buffer
	n, err := svc.Export(ctx, &buf, models.ExportJSON, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Contains(t, buf.String(), `"entries": []`)
}

func TestExportService_Errors(t *testing.T) {
	svc, _ := newTestExportSvc(t)
	ctx := context.Background()
	var buf bytes.Buffer

	_, err := svc.Export(ctx, &buf, "pdf", nil)
	assert.ErrorIs(t, err, ErrUnsupportedExportFormat)

	_, err = svc.Export(ctx, &buf, models.ExportJSON, &models.DateRange{From: mar6, To: mar5})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Zero(t, buf.Len())
}
