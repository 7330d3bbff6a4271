package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is used when a non-positive cost is configured.
const DefaultBcryptCost = 10

// maxPasswordBytes is the bcrypt input limit. Longer passwords are cut to it
// on both hash and verify, so only the first 72 bytes are significant.
const maxPasswordBytes = 72

// PasswordHasher hashes passwords and verifies them against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// BcryptHasher is a salted adaptive PasswordHasher.
type BcryptHasher struct {
	cost int
}

// Ensure BcryptHasher implements PasswordHasher
var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher with the given bcrypt cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify compares password with hash in constant time.
func (h *BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
