// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks caller input before it reaches storage.
//
// Invalid input is rejected with a sentinel error rather than coerced:
// unparseable dates, negative offsets, inverted ranges, malformed PINs and
// list items that would not survive comma-joined storage.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
