package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
)

// BcryptHasher implements PasswordHasher using bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the default bcrypt cost
func NewBcryptHasher() core.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a bcrypt hash from the plain-text password
func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Compare reports whether the password matches the stored hash
func (h *BcryptHasher) Compare(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
