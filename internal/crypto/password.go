// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// separator splits salt and key in the stored form.
const separator = "$"

// PlaceholderHash is a well-formed stored value with an all-zero salt and
// key. Verifying against it costs one full derivation and fails for every
// password, so callers use it when there is no stored value to check.
var PlaceholderHash = strings.Repeat("00", 16) + separator + strings.Repeat("00", 32)

// ErrMalformedHash is returned when a stored password representation cannot
// be decoded.
var ErrMalformedHash = errors.New("malformed password hash")

// Params holds the Argon2id tuning parameters.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultParams are the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
var DefaultParams = Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

// passwordHasher is the Argon2id implementation of [PasswordHasher].
type passwordHasher struct {
	params Params
	random io.Reader
}

// NewPasswordHasher constructs a [PasswordHasher] using params.
func NewPasswordHasher(params Params) PasswordHasher {
	return &passwordHasher{
		params: params,
		random: rand.Reader,
	}
}

// Hash implements [PasswordHasher].
func (h *passwordHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := h.derive(password, salt)
	return hex.EncodeToString(salt) + separator + hex.EncodeToString(key), nil
}

// Verify implements [PasswordHasher].
func (h *passwordHasher) Verify(password, stored string) bool {
	salt, key, err := decode(stored)
	if err != nil {
		return false
	}

	derived := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(derived, key) == 1
}

func (h *passwordHasher) derive(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		h.params.Time,
		h.params.Memory,
		h.params.Threads,
		h.params.KeyLen,
	)
}

// decode splits stored into its salt and key.
func decode(stored string) (salt, key []byte, err error) {
	saltHex, keyHex, ok := strings.Cut(stored, separator)
	if !ok || saltHex == "" || keyHex == "" {
		return nil, nil, ErrMalformedHash
	}

	if salt, err = hex.DecodeString(saltHex); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if key, err = hex.DecodeString(keyHex); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	return salt, key, nil
}
