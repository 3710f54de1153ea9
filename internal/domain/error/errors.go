package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidOTP          = 4004
	CodeInvalidCredentials  = 4005
	CodeConstraintViolation = 4006
	CodeDuplicateUser       = 4007
	CodeDuplicateWorker     = 4008
	CodeDuplicateAdmin      = 4009
	CodeAccountInactive     = 4030
	CodeUnauthorized        = 4010
	CodeUserNotFound        = 4040
	CodeStationNotFound     = 4041
	CodeWorkerNotFound      = 4042
	CodeAdminNotFound       = 4043
	CodeBookingNotFound     = 4044
	CodeWalletNotFound      = 4045
	CodeBookingSlotNotFound = 4046
	CodeVehicleNotFound     = 4047
	CodeWalletLocked        = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeOTPDelivery    = 5001
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a wallet cannot cover a booking amount
	ErrInsufficientBalance = errors.New("insufficient wallet balance")

	// ErrInvalidAmount is returned when a monetary amount has an invalid format
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidPhoneNumber is returned when a phone number is empty or too long
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	// ErrInvalidOTP is returned when a submitted OTP does not match the stored one
	ErrInvalidOTP = errors.New("invalid OTP")

	// ErrInvalidCredentials is returned when a passcode or password does not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountInactive is returned when a user has not verified their phone number
	ErrAccountInactive = errors.New("account not activated")

	// ErrUnauthorized is returned for missing, invalid, or expired access tokens
	ErrUnauthorized = errors.New("invalid access token")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrStationNotFound is returned when the requested station doesn't exist
	ErrStationNotFound = errors.New("station not found")

	// ErrWorkerNotFound is returned when the requested worker doesn't exist
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrAdminNotFound is returned when the requested admin doesn't exist
	ErrAdminNotFound = errors.New("admin not found")

	// ErrWalletNotFound is returned when a user has no wallet row
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrBookingNotFound is returned when no bookings match a listing query
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingSlotNotFound is returned when the referenced slot doesn't exist
	ErrBookingSlotNotFound = errors.New("booking slot not found")

	// ErrVehicleNotFound is returned when the requested vehicle doesn't exist
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrDuplicateUser is returned when a phone number is already registered
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateWorker is returned when a worker phone number is already registered
	ErrDuplicateWorker = errors.New("worker already exists")

	// ErrDuplicateAdmin is returned when an admin email is already registered
	ErrDuplicateAdmin = errors.New("admin already exists")

	// ErrWalletLocked is returned when the wallet row is held by a concurrent debit
	ErrWalletLocked = errors.New("wallet is locked by another operation")

	// ErrOTPDelivery is returned when the SMS gateway fails to deliver an OTP
	ErrOTPDelivery = errors.New("failed to send OTP")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidOTP):
		return CodeInvalidOTP
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrAccountInactive):
		return CodeAccountInactive
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrStationNotFound):
		return CodeStationNotFound
	case errors.Is(err, ErrWorkerNotFound):
		return CodeWorkerNotFound
	case errors.Is(err, ErrAdminNotFound):
		return CodeAdminNotFound
	case errors.Is(err, ErrBookingNotFound):
		return CodeBookingNotFound
	case errors.Is(err, ErrWalletNotFound):
		return CodeWalletNotFound
	case errors.Is(err, ErrBookingSlotNotFound):
		return CodeBookingSlotNotFound
	case errors.Is(err, ErrVehicleNotFound):
		return CodeVehicleNotFound
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidPhoneNumber):
		return CodeInvalidRequest
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrDuplicateWorker):
		return CodeDuplicateWorker
	case errors.Is(err, ErrDuplicateAdmin):
		return CodeDuplicateAdmin
	case errors.Is(err, ErrWalletLocked):
		return CodeWalletLocked
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrOTPDelivery):
		return CodeOTPDelivery
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed information when a wallet
// cannot cover a requested booking amount
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient wallet balance for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// BookingError represents an error raised while creating a booking
type BookingError struct {
	UserID    uint64
	StationID uint64
	SlotID    uint64
	Amount    string
	Reason    string
	Err       error
}

// Error implements the error interface for BookingError
func (e *BookingError) Error() string {
	return fmt.Sprintf("booking failed for user %d at station %d (slot: %d, amount: %s): %s - %v",
		e.UserID, e.StationID, e.SlotID, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *BookingError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BookingError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "booking_error",
		"user_id":    e.UserID,
		"station_id": e.StationID,
		"slot_id":    e.SlotID,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewBookingError creates a detailed booking error
func NewBookingError(userID, stationID, slotID uint64, amount, reason string, err error) error {
	return &BookingError{
		UserID:    userID,
		StationID: stationID,
		SlotID:    slotID,
		Amount:    amount,
		Reason:    reason,
		Err:       err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrStationNotFound) ||
		errors.Is(err, ErrWorkerNotFound) ||
		errors.Is(err, ErrAdminNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrBookingSlotNotFound) ||
		errors.Is(err, ErrVehicleNotFound)
}

// IsDuplicateError checks if the error is any duplicate-record error
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateUser) ||
		errors.Is(err, ErrDuplicateWorker) ||
		errors.Is(err, ErrDuplicateAdmin)
}

// IsWalletLockedError checks if the error is related to a locked wallet row
func IsWalletLockedError(err error) bool {
	return errors.Is(err, ErrWalletLocked)
}
