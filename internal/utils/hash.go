package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt digest from the plaintext password.
//
// bcrypt embeds a per-call random salt into the digest, so hashing the same
// password twice yields different strings. cost controls the work factor;
// pass 0 (or any value below bcrypt.MinCost) to use bcrypt.DefaultCost.
//
// Returns:
//
//	string - the bcrypt digest, safe to persist
//	error  - non-nil if the password exceeds bcrypt's 72-byte limit or
//	         hashing fails
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether candidate matches the stored bcrypt digest.
// The comparison is performed by bcrypt itself; plaintext values are never
// compared directly.
func CheckPassword(digest, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(candidate)) == nil
}
