// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package analytics computes journaling statistics from entry dates.
//
// Functions here are pure: they take the dates and the reference day as
// arguments and never touch storage or the clock.
package analytics
