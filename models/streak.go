// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StreakStats summarizes journaling consistency up to a reference day.
type StreakStats struct {
	// Current is the length of the run of consecutive days ending today,
	// or 0 when today has no entry.
	Current int `json:"current" yaml:"current"`
	// Longest is the length of the longest run of consecutive days.
	Longest int `json:"longest" yaml:"longest"`
	// Missed counts days without an entry from the first entry through today.
	Missed int `json:"missed" yaml:"missed"`
}
