package persistence

import (
	"context"
)

// UnitOfWork coordinates repository operations inside a single database
// transaction so multi-step writes are observed atomically. The booking
// coordinator acquires one per call and releases it on every exit path.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context.
	// Safe to call after Commit; a completed transaction is not an error.
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetWalletRepository returns a wallet repository bound to the current transaction
	GetWalletRepository(ctx context.Context) WalletRepository

	// GetBookingRepository returns a booking repository bound to the current transaction
	GetBookingRepository(ctx context.Context) BookingRepository
}
