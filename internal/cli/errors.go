package cli

import "errors"

var (
	ErrAccessDenied    = errors.New("wrong PIN")
	ErrEntryNotFound   = errors.New("no entry for this day")
	ErrPinMismatch     = errors.New("PINs do not match")
	ErrIncompleteRange = errors.New("both --from and --to are required")
)
