// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPinBytes is the longest input bcrypt accepts.
const MaxPinBytes = 72

// bcryptPinHasher is the bcrypt implementation of [PinHasher].
type bcryptPinHasher struct {
	cost int
}

// NewPinHasher returns a bcrypt-backed [PinHasher]. A cost outside
// [bcrypt.MinCost, bcrypt.MaxCost] is replaced with bcrypt.DefaultCost.
func NewPinHasher(cost int) PinHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptPinHasher{cost: cost}
}

// Hash implements [PinHasher]. bcrypt embeds a random salt and the cost in
// the returned string.
func (h *bcryptPinHasher) Hash(pin string) (string, error) {
	if len(pin) > MaxPinBytes {
		return "", ErrPinTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash pin: %w", err)
	}
	return string(hashed), nil
}

// Verify implements [PinHasher] via bcrypt.CompareHashAndPassword.
func (h *bcryptPinHasher) Verify(hashed, pin string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pin))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}
