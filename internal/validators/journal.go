// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/go-journal/models"
)

// PIN length bounds in characters.
const (
	MinPinLength = 4
	MaxPinLength = 32
)

// Field name constants restrict validation of an [models.EntryInput] to a
// subset of its fields.
const (
	FieldPrimaryMood    = "primary_mood"
	FieldSecondaryMoods = "secondary_moods"
	FieldTags           = "tags"
)

// Years a date key can represent. Keys of other years are not four digits
// wide, so they would not sort in date order.
const (
	MinDateYear = 1
	MaxDateYear = 9999
)

// JournalValidator implements [Validator] for journal requests:
// time.Time (a calendar day), models.EntryInput, models.PageRequest,
// models.DateRange and models.Pin.
type JournalValidator struct {
}

// NewJournalValidator returns a [JournalValidator] as a [Validator].
func NewJournalValidator() Validator {
	return &JournalValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for anything else.
func (v *JournalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case time.Time:
		return v.validateDate(value)
	case *time.Time:
		return v.validateDate(*value)

	case models.EntryInput:
		return v.validateEntryInput(ctx, value, fields...)
	case *models.EntryInput:
		return v.validateEntryInput(ctx, *value, fields...)

	case models.PageRequest:
		return v.validatePageRequest(value)
	case *models.PageRequest:
		return v.validatePageRequest(*value)

	case models.DateRange:
		return v.validateDateRange(value)
	case *models.DateRange:
		return v.validateDateRange(*value)

	case models.Pin:
		return v.validatePin(value)
	case *models.Pin:
		return v.validatePin(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateEntryInput checks the categorical fields of an entry. Title and
// content are free text and are not checked.
func (v *JournalValidator) validateEntryInput(_ context.Context, in models.EntryInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrimaryMood, FieldSecondaryMoods, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldPrimaryMood:
			if strings.ContainsAny(in.PrimaryMood, "\r\n") {
				return ErrPrimaryMoodHasNewlines
			}
		case FieldSecondaryMoods:
			if err := validateListItems(in.SecondaryMoods); err != nil {
				return err
			}
		case FieldTags:
			if err := validateListItems(in.Tags); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateListItems rejects items that would not come back unchanged after
// being comma-joined and split again.
func validateListItems(items []string) error {
	for _, item := range items {
		if item == "" {
			return ErrEmptyListItem
		}
		if strings.Contains(item, ",") {
			return ErrListItemHasSeparator
		}
	}
	return nil
}

func (v *JournalValidator) validatePageRequest(p models.PageRequest) error {
	if p.Offset < 0 {
		return ErrInvalidOffset
	}
	if p.Limit <= 0 {
		return ErrInvalidLimit
	}
	return nil
}

// validateDate accepts days whose key reads back as the same day.
func (v *JournalValidator) validateDate(date time.Time) error {
	if date.IsZero() {
		return ErrZeroDate
	}
	if y := date.Year(); y < MinDateYear || y > MaxDateYear {
		return ErrDateOutOfRange
	}
	if _, err := models.ParseDateKey(models.DateKey(date)); err != nil {
		return ErrDateOutOfRange
	}
	return nil
}

func (v *JournalValidator) validateDateRange(r models.DateRange) error {
	if err := v.validateDate(r.From); err != nil {
		return err
	}
	if err := v.validateDate(r.To); err != nil {
		return err
	}
	from, to := r.Keys()
	if from > to {
		return ErrInvalidDateRange
	}
	return nil
}

func (v *JournalValidator) validatePin(p models.Pin) error {
	pin := string(p)
	if pin == "" {
		return ErrEmptyPin
	}

	n := len([]rune(pin))
	if n < MinPinLength {
		return ErrPinTooShort
	}
	if n > MaxPinLength {
		return ErrPinTooLong
	}

	for _, r := range pin {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return ErrInvalidPinFormat
		}
	}
	return nil
}
