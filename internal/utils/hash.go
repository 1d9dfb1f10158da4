package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when a login names an unknown user, so that
// both failure paths spend comparable time in bcrypt.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("clinic-dummy-password"), bcrypt.DefaultCost)

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
// The comparison is constant-time.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPasswordCheck performs a throwaway bcrypt comparison.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
