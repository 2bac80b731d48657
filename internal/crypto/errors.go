package crypto

import "errors"

var (
	// ErrMalformedHash is returned by [PinHasher.Verify] when the stored hash
	// is not a valid hash of the configured algorithm.
	ErrMalformedHash = errors.New("malformed pin hash")

	// ErrPinTooLong is returned by [PinHasher.Hash] when the PIN exceeds the
	// algorithm's input limit.
	ErrPinTooLong = errors.New("pin is too long")
)
