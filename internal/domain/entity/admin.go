package entity

import (
	"strings"

	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
)

// Admin is a back-office principal that authenticates with email and a
// hashed password
type Admin struct {
	ID       uint64
	Name     string
	Email    string
	Password string // bcrypt hash, never the plain text
	IsActive bool
}

// NewAdmin creates an active admin with an already-hashed password
func NewAdmin(name, email, hashedPassword string) (*Admin, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidRequest
	}
	if hashedPassword == "" {
		return nil, errs.ErrInvalidCredentials
	}

	return &Admin{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		IsActive: true,
	}, nil
}
