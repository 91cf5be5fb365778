// Package password provides one-way hashing and verification of user passwords.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a valid bcrypt hash of a throwaway value. Verify runs against
// it when no stored hash exists so that unknown-email and wrong-password
// lookups cost the same amount of work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hasher hashes and verifies passwords with bcrypt. The zero value is ready
// to use and applies bcrypt's default cost (10).
type Hasher struct{}

// NewHasher creates a new bcrypt Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash derives a salted bcrypt hash from the plaintext password.
// The salt is random, so hashing the same password twice yields
// different values.
func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored hash. A mismatch is a
// normal outcome, not an error.
func (h *Hasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// VerifyDummy burns the same bcrypt work as a real comparison and always
// returns false. Callers use it to keep the unknown-user path
// indistinguishable from a failed password check.
func (h *Hasher) VerifyDummy(plain string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain))
	return false
}
