// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() PinHasher {
	return NewPinHasher(bcrypt.MinCost)
}

func TestPinHasher_HashAndVerify(t *testing.T) {
	h := newTestHasher()

	hashed, err := h.Hash("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hashed)

	ok, err := h.Verify(hashed, "1234")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPinHasher_WrongPin(t *testing.T) {
	h := newTestHasher()
	hashed, err := h.Hash("1234")
	require.NoError(t, err)

	ok, err := h.Verify(hashed, "4321")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPinHasher_IsSalted(t *testing.T) {
	h := newTestHasher()

	a, err := h.Hash("0000")
	require.NoError(t, err)
	b, err := h.Hash("0000")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPinHasher_MalformedHashFailsClosed(t *testing.T) {
	h := newTestHasher()

	for _, stored := range []string{"", "1234", "$2a$10$short", "not-a-hash-at-all"} {
		ok, err := h.Verify(stored, "1234")
		assert.False(t, ok, "stored=%q", stored)
		assert.ErrorIs(t, err, ErrMalformedHash, "stored=%q", stored)
	}
}

func TestPinHasher_TooLong(t *testing.T) {
	h := newTestHasher()

	_, err := h.Hash(strings.Repeat("9", MaxPinBytes+1))

	assert.ErrorIs(t, err, ErrPinTooLong)
}

func TestNewPinHasher_ClampsCost(t *testing.T) {
	h := NewPinHasher(1).(*bcryptPinHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewPinHasher(bcrypt.MaxCost + 1).(*bcryptPinHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewPinHasher(bcrypt.MinCost).(*bcryptPinHasher)
	assert.Equal(t, bcrypt.MinCost, h.cost)
}
