// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
)

// DateKeyLayout is the canonical layout of an entry date key.
//
// Keys in this layout sort lexicographically in the same order as the dates
// they represent; range queries in the store rely on it.
const DateKeyLayout = "2006-01-02"

// listSeparator joins secondary moods and tags into a single stored column.
const listSeparator = ","

// JournalEntry is a single day of the journal. At most one entry exists per
// calendar day and EntryDateKey is its identity.
type JournalEntry struct {
	// RecordID is the storage row identifier. It is informational only;
	// entries are always addressed by EntryDateKey.
	RecordID int64 `json:"-" yaml:"-"`

	EntryDateKey string    `json:"date" yaml:"date"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"updated_at"`

	Title string `json:"title" yaml:"title"`
	// ContentHTML is an HTML fragment produced by the editor. It is stored
	// and returned as is.
	ContentHTML string `json:"content_html" yaml:"content_html"`

	PrimaryMood    string   `json:"primary_mood" yaml:"primary_mood"`
	SecondaryMoods []string `json:"secondary_moods" yaml:"secondary_moods"`
	Tags           []string `json:"tags" yaml:"tags"`
}

// Input returns the mutable fields of the entry.
func (e JournalEntry) Input() EntryInput {
	return EntryInput{
		Title:          e.Title,
		ContentHTML:    e.ContentHTML,
		PrimaryMood:    e.PrimaryMood,
		SecondaryMoods: e.SecondaryMoods,
		Tags:           e.Tags,
	}
}

// EntryInput carries the mutable fields of an entry for an upsert.
type EntryInput struct {
	Title          string
	ContentHTML    string
	PrimaryMood    string
	SecondaryMoods []string
	Tags           []string
}

// DateKey formats the calendar day of t as a date key. Only the year, month
// and day of t in its own location are used.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a date key into midnight UTC of that day.
// Keys that are not exactly in [DateKeyLayout] form are rejected.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	// time.Parse accepts some non-canonical input such as single-digit
	// fields; the key must round-trip.
	if t.Format(DateKeyLayout) != key {
		return time.Time{}, fmt.Errorf("invalid date key %q: not in %s form", key, DateKeyLayout)
	}
	return t, nil
}

// CalendarDay truncates t to midnight UTC of the calendar day t falls on in
// its own location.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// JoinList serializes a list for storage. An empty list becomes "".
func JoinList(items []string) string {
	return strings.Join(items, listSeparator)
}

// SplitList is the inverse of [JoinList]. "" yields an empty list.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSeparator)
}
