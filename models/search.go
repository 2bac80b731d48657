// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// SearchFilter narrows a listing of entries. Criteria combine with AND;
// blank criteria are ignored.
type SearchFilter struct {
	// Search matches a substring of the title or of the content.
	Search string
	// Mood matches the primary mood exactly.
	Mood string
	// Tag matches a substring of the stored comma-joined tag list, so "art"
	// also matches an entry tagged "smart".
	Tag string
}

// HasSearch reports whether the free-text criterion is set.
func (f SearchFilter) HasSearch() bool { return strings.TrimSpace(f.Search) != "" }

// HasMood reports whether the mood criterion is set.
func (f SearchFilter) HasMood() bool { return strings.TrimSpace(f.Mood) != "" }

// HasTag reports whether the tag criterion is set.
func (f SearchFilter) HasTag() bool { return strings.TrimSpace(f.Tag) != "" }

// Page is one window of an ordered listing together with the size of the
// whole listing.
type Page struct {
	Entries []JournalEntry
	Total   int
	Offset  int
	Limit   int
}

// HasNext reports whether entries exist after this page.
func (p Page) HasNext() bool {
	return p.Offset+len(p.Entries) < p.Total
}

// PageRequest selects the window [Offset, Offset+Limit) of an ordered listing.
type PageRequest struct {
	Offset int
	Limit  int
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Keys returns the date keys of both bounds.
func (r DateRange) Keys() (from, to string) {
	return DateKey(r.From), DateKey(r.To)
}
