package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/pin_hasher_mock.go -package=mock

// PinHasher turns a PIN into a salted one-way hash and checks candidate PINs
// against a stored hash. It knows nothing about storage.
type PinHasher interface {
	// Hash returns a salted hash of pin. Hashing the same PIN twice yields
	// different strings.
	Hash(pin string) (string, error)

	// Verify reports whether pin matches hashed using the algorithm's own
	// constant-time comparison. A mismatch is (false, nil). A hash that cannot
	// be parsed is (false, ErrMalformedHash).
	Verify(hashed, pin string) (bool, error)
}
