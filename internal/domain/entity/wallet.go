package entity

import (
	"time"

	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
)

// WalletNumberLength is the length of the public wallet identifier
const WalletNumberLength = 12

// Wallet holds a user's stored balance. Balance is kept in paise (private)
// so arithmetic never touches floating point.
type Wallet struct {
	ID           uint64
	UserID       uint64
	WalletNumber string
	balance      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewWallet creates a wallet for the given user with a zero balance
func NewWallet(userID uint64, walletNumber string, timeProvider coreport.TimeProvider) (*Wallet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if len(walletNumber) != WalletNumberLength {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &Wallet{
		UserID:       userID,
		WalletNumber: walletNumber,
		balance:      0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Balance returns the current balance in paise
func (w *Wallet) Balance() int64 {
	return w.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (w *Wallet) FormattedBalance() string {
	return PaiseToString(w.balance)
}

// SetBalance updates the balance directly (for repositories rehydrating state)
func (w *Wallet) SetBalance(paise int64, timeProvider coreport.TimeProvider) {
	w.balance = paise
	w.UpdatedAt = timeProvider.Now()
}

// CanDebit reports whether the wallet covers the given booking amount.
// The boundary is strict: a balance exactly equal to the amount is treated
// as insufficient.
func (w *Wallet) CanDebit(amountInPaise int64) bool {
	return w.balance > amountInPaise
}

// Debit subtracts the amount from the balance, enforcing the strict
// sufficiency boundary
func (w *Wallet) Debit(amountInPaise int64, timeProvider coreport.TimeProvider) error {
	if amountInPaise <= 0 {
		return errs.ErrInvalidAmount
	}
	if !w.CanDebit(amountInPaise) {
		return errs.ErrInsufficientBalance
	}
	w.balance -= amountInPaise
	w.UpdatedAt = timeProvider.Now()
	return nil
}
