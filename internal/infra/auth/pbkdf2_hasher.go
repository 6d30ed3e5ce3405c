// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"

	"tavern/internal/domain/service"
	"tavern/internal/errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	keyLength  = 64

	// DefaultIterations is the PBKDF2 work factor used when none is configured.
	DefaultIterations = 210000
)

// pbkdf2Hasher is a concrete implementation of the CredentialHasher
// interface using PBKDF2-SHA512 with a per-credential random salt.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.CredentialHasher interface.
func NewPBKDF2Hasher(iterations int) service.CredentialHasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// Derive generates a fresh random salt and the PBKDF2 hash of password
// under it. An empty password is rejected; an entropy failure is fatal to
// the calling operation and propagated as an error.
func (h *pbkdf2Hasher) Derive(password string) ([]byte, []byte, error) {
	if password == "" {
		return nil, nil, errors.New("password must not be empty")
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate credential salt")
	}

	hash := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha512.New)

	return hash, salt, nil
}

// Verify recomputes the hash of password under salt and compares it to
// hash in constant time.
func (h *pbkdf2Hasher) Verify(password string, hash, salt []byte) bool {
	if len(hash) == 0 || len(salt) == 0 {
		return false
	}

	computed := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha512.New)

	return subtle.ConstantTimeCompare(computed, hash) == 1
}
