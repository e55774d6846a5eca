// Package hasher derives and verifies salted password hashes.
package hasher

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2-HMAC-SHA512 parameters. Fixed: stored hashes do not encode them,
// so changing any of these invalidates every existing credential.
const (
	iterations = 1000
	keyLen     = 64
	saltLen    = 16
)

// PasswordHasher provides password hashing and verification.
type PasswordHasher interface {
	// Hash produces a "salt:hash" hex-encoded PBKDF2 digest of the password.
	Hash(password string) (string, error)

	// Verify checks the password against a stored "salt:hash" value.
	// Malformed stored values fail verification rather than erroring.
	Verify(password, stored string) bool
}

// PBKDF2Hasher implements PasswordHasher using PBKDF2-HMAC-SHA512.
type PBKDF2Hasher struct{}

// New creates a new PBKDF2Hasher.
func New() *PBKDF2Hasher {
	return &PBKDF2Hasher{}
}

// Hash produces a "salt:hash" digest with a fresh random salt.
func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha512.New)

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// Verify recomputes the digest with the stored salt and compares in
// constant time.
func (h *PBKDF2Hasher) Verify(password, stored string) bool {
	saltHex, hashHex, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}

	got := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha512.New)

	return subtle.ConstantTimeCompare(got, want) == 1
}
