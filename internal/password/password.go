// Package password wraps bcrypt hashing and verification of user passwords.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 12

// Hash hashes the given plaintext password using bcrypt. The output embeds
// a fresh random salt, so hashing the same password twice yields different
// strings.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify compares a plaintext password against a stored bcrypt hash.
// A clean mismatch returns (false, nil). A stored hash bcrypt cannot parse
// returns a non-nil error: that is an internal failure, not a wrong password,
// and callers must not report it as one.
func Verify(plain, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("failed to verify password: %w", err)
}
