// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-journal/models"
)

func TestJournalValidator_EntryInput(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		in      models.EntryInput
		fields  []string
		wantErr error
	}{
		{
			name: "valid",
			in: models.EntryInput{
				Title:          "Day",
				ContentHTML:    "<p>a, b, c</p>",
				PrimaryMood:    "happy",
				SecondaryMoods: []string{"calm"},
				Tags:           []string{"travel", "food"},
			},
		},
		{name: "zero value is valid", in: models.EntryInput{}},
		{
			name:    "tag with comma",
			in:      models.EntryInput{Tags: []string{"a,b"}},
			wantErr: ErrListItemHasSeparator,
		},
		{
			name:    "empty secondary mood",
			in:      models.EntryInput{SecondaryMoods: []string{"calm", ""}},
			wantErr: ErrEmptyListItem,
		},
		{
			name:    "multiline primary mood",
			in:      models.EntryInput{PrimaryMood: "happy\nsad"},
			wantErr: ErrPrimaryMoodHasNewlines,
		},
		{
			name:   "scoped to mood skips bad tags",
			in:     models.EntryInput{PrimaryMood: "ok", Tags: []string{"a,b"}},
			fields: []string{FieldPrimaryMood},
		},
		{
			name:    "unknown field",
			in:      models.EntryInput{},
			fields:  []string{"weather"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.in, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			in := tt.in
			assert.ErrorIs(t, v.Validate(ctx, &in, tt.fields...), tt.wantErr)
		})
	}
}

func TestJournalValidator_PageRequest(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PageRequest{Offset: 0, Limit: 20}))
	assert.NoError(t, v.Validate(ctx, &models.PageRequest{Offset: 40, Limit: 1}))
	assert.ErrorIs(t, v.Validate(ctx, models.PageRequest{Offset: -1, Limit: 20}), ErrInvalidOffset)
	assert.ErrorIs(t, v.Validate(ctx, models.PageRequest{Offset: 0, Limit: 0}), ErrInvalidLimit)
}

func TestJournalValidator_DateRange(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := jan1.AddDate(0, 0, 1)

	assert.NoError(t, v.Validate(ctx, models.DateRange{From: jan1, To: jan2}))
	assert.NoError(t, v.Validate(ctx, models.DateRange{From: jan1, To: jan1}), "single-day range")
	assert.ErrorIs(t, v.Validate(ctx, models.DateRange{From: jan2, To: jan1}), ErrInvalidDateRange)
	assert.ErrorIs(t, v.Validate(ctx, models.DateRange{From: jan1}), ErrZeroDate)

	far := time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, v.Validate(ctx, models.DateRange{From: jan1, To: far}), ErrDateOutOfRange)
	assert.ErrorIs(t, v.Validate(ctx, &models.DateRange{From: far, To: far}), ErrDateOutOfRange)
}

func TestJournalValidator_Date(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{name: "ordinary day", date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "time of day ignored", date: time.Date(2024, 3, 5, 23, 59, 0, 0, time.Local)},
		{name: "first keyable day", date: time.Date(1, 1, 2, 0, 0, 0, 0, time.UTC)},
		{name: "last keyable day", date: time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "zero", date: time.Time{}, wantErr: ErrZeroDate},
		{name: "five digit year", date: time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC), wantErr: ErrDateOutOfRange},
		{name: "year zero", date: time.Date(0, 6, 1, 0, 0, 0, 0, time.UTC), wantErr: ErrDateOutOfRange},
		{name: "negative year", date: time.Date(-5, 6, 1, 0, 0, 0, 0, time.UTC), wantErr: ErrDateOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.date)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, v.Validate(ctx, &time.Time{}), ErrZeroDate, "pointer form")
}

func TestJournalValidator_Pin(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	tests := []struct {
		pin     models.Pin
		wantErr error
	}{
		{pin: "1234"},
		{pin: "abc123XY"},
		{pin: "", wantErr: ErrEmptyPin},
		{pin: "123", wantErr: ErrPinTooShort},
		{pin: models.Pin(strings.Repeat("1", MaxPinLength+1)), wantErr: ErrPinTooLong},
		{pin: "12 34", wantErr: ErrInvalidPinFormat},
		{pin: "12-34", wantErr: ErrInvalidPinFormat},
	}

	for _, tt := range tests {
		err := v.Validate(ctx, tt.pin)
		if tt.wantErr == nil {
			assert.NoError(t, err, "pin=%q", string(tt.pin))
		} else {
			assert.ErrorIs(t, err, tt.wantErr, "pin=%q", string(tt.pin))
		}
	}
}

func TestJournalValidator_UnsupportedType(t *testing.T) {
	v := NewJournalValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
