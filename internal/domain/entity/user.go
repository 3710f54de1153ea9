package entity

import (
	"strings"
	"time"

	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
)

// MaxPhoneNumberLength bounds phone numbers the same way the mobile
// registration form does
const MaxPhoneNumberLength = 10

// User represents an end user of the marketplace. A user owns exactly one
// wallet and zero or more vehicles; bookings reference the user directly.
type User struct {
	ID          uint64
	Name        string
	PhoneNumber string
	OTP         string // pending one-time password, empty once verified
	IsActive    bool
	CreatedAt   time.Time
}

// NewUser creates an unverified user. Activation happens through OTP
// verification, so IsActive starts false.
func NewUser(name, phoneNumber string, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrInvalidRequest
	}
	if err := validatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}

	return &User{
		Name:        name,
		PhoneNumber: phoneNumber,
		IsActive:    false,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// SetOTP stores a freshly generated OTP pending verification
func (u *User) SetOTP(otp string) {
	u.OTP = otp
}

// VerifyOTP checks the submitted OTP against the stored one. On success the
// account is activated and the OTP cleared so it cannot be replayed.
func (u *User) VerifyOTP(otp string) error {
	if u.OTP == "" || u.OTP != otp {
		return errs.ErrInvalidOTP
	}
	u.IsActive = true
	u.OTP = ""
	return nil
}

func validatePhoneNumber(phoneNumber string) error {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" || len(phoneNumber) > MaxPhoneNumberLength {
		return errs.ErrInvalidPhoneNumber
	}
	return nil
}
