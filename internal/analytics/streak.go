// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package analytics

import (
	"slices"
	"time"

	"github.com/MKhiriev/go-journal/models"
)

// CalculateStreaks returns the current streak, the longest streak and the
// number of missed days for the given entry dates as of today.
//
// dates may be unsorted and may contain duplicates or several instants of the
// same day; only calendar days count. The current streak is 0 unless today
// itself has an entry. Missed days span from the earliest entry through today.
func CalculateStreaks(dates []time.Time, today time.Time) models.StreakStats {
	days := normalizeDays(dates)
	if len(days) == 0 {
		return models.StreakStats{}
	}
	todayDay := models.CalendarDay(today)

	return models.StreakStats{
		Current: currentStreak(days, todayDay),
		Longest: longestStreak(days),
		Missed:  missedDays(days, todayDay),
	}
}

// normalizeDays truncates every date to its calendar day, sorts ascending and
// drops duplicates.
func normalizeDays(dates []time.Time) []time.Time {
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		days = append(days, models.CalendarDay(d))
	}

	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })
	return slices.CompactFunc(days, func(a, b time.Time) bool { return a.Equal(b) })
}

func longestStreak(days []time.Time) int {
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if isNextDay(days[i-1], days[i]) {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}
	return longest
}

func currentStreak(days []time.Time, today time.Time) int {
	if !slices.ContainsFunc(days, today.Equal) {
		return 0
	}

	// the walk starts at the most recent entry, which is today unless
	// future-dated entries exist
	current := 1
	for i := len(days) - 1; i > 0; i-- {
		if !isNextDay(days[i-1], days[i]) {
			break
		}
		current++
	}
	return current
}

func missedDays(days []time.Time, today time.Time) int {
	span := daysBetween(days[0], today) + 1
	return span - len(days)
}

// isNextDay reports whether b is exactly one calendar day after a.
// Both values must already be calendar days in UTC.
func isNextDay(a, b time.Time) bool {
	return a.AddDate(0, 0, 1).Equal(b)
}

// daysBetween counts whole calendar days from a to b. Both values are
// calendar days in UTC, which has no DST transitions, so dividing the
// duration is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
