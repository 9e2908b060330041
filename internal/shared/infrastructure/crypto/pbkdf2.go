package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Default PBKDF2 parameters for credential hashing.
const (
	DefaultIterations = 100_000
	SaltLength        = 16
	KeyLength         = 32
)

// PBKDF2Hasher derives credential hashes with PBKDF2-HMAC-SHA256.
// Hashes and salts are exchanged base64 encoded.
type PBKDF2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher creates a hasher. Non-positive iterations fall back to
// DefaultIterations.
func NewPBKDF2Hasher(iterations int) *PBKDF2Hasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &PBKDF2Hasher{iterations: iterations}
}

// Iterations returns the configured iteration count.
func (h *PBKDF2Hasher) Iterations() int {
	return h.iterations
}

// NewSalt returns a fresh random salt, base64 encoded.
func (h *PBKDF2Hasher) NewSalt() (string, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// Derive computes the base64 encoded key for password and an encoded salt.
func (h *PBKDF2Hasher) Derive(password, salt string) (string, error) {
	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("invalid salt encoding: %w", err)
	}
	if len(rawSalt) == 0 {
		return "", errors.New("salt is empty")
	}
	key := pbkdf2.Key([]byte(password), rawSalt, h.iterations, KeyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(key), nil
}

// Verify recomputes the hash for password and compares it in constant time.
func (h *PBKDF2Hasher) Verify(password, hash, salt string) bool {
	derived, err := h.Derive(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}
