package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOffset    = errors.New("offset must not be negative")
	ErrInvalidLimit     = errors.New("limit must be positive")
	ErrInvalidDateRange = errors.New("range start is after range end")
	ErrZeroDate         = errors.New("date is required")
	ErrDateOutOfRange   = errors.New("date must fall between years 0001 and 9999")

	ErrEmptyPin         = errors.New("pin is required")
	ErrPinTooShort      = errors.New("pin is too short")
	ErrPinTooLong       = errors.New("pin is too long")
	ErrInvalidPinFormat = errors.New("pin may contain only letters and digits")

	ErrEmptyListItem          = errors.New("mood and tag values cannot be empty")
	ErrListItemHasSeparator   = errors.New("mood and tag values cannot contain commas")
	ErrPrimaryMoodHasNewlines = errors.New("primary mood must be a single line")
)
