package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GenerateSalt returns a fresh random salt, hex encoded.
func GenerateSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword hashes the salted password with bcrypt.
func HashPassword(password, salt string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(salt+password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ValidatePassword reports whether the entered password matches the saved
// hash for the account's salt.
func ValidatePassword(entered, salt, savedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(savedHash), []byte(salt+entered)) == nil
}
