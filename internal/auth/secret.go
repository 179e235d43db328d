package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashSecret returns the bcrypt hash stored in DISPATCH_TRIGGER_TOKEN_HASH.
func HashSecret(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("secret is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

// SecretMatches reports whether raw matches the bcrypt hash.
func SecretMatches(hash, raw string) bool {
	if hash == "" || raw == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
