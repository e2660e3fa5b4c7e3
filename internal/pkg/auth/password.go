package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrHashMismatch is returned when a password does not match its stored hash.
var ErrHashMismatch = errors.New("password hash mismatch")

// PasswordHasher defines the hashing strategy for credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// SHA256Hasher hashes passwords as unsalted hex-encoded SHA-256 digests.
// This is the format the credential file has always stored; it is a known
// weakness (no salt, fast digest) kept for compatibility with existing
// user files.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Hash returns the hex SHA-256 digest of the UTF-8 password bytes.
// It fails on an empty password.
func (h *SHA256Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Compare checks a password against a stored hex digest. The comparison
// is plain string equality, matching how existing credential files have
// always been checked (not timing-safe).
func (h *SHA256Hasher) Compare(hash string, password string) error {
	computed, err := h.Hash(password)
	if err != nil {
		return err
	}
	if hash != computed {
		return ErrHashMismatch
	}
	return nil
}
