package persistence

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
)

// WalletRepository defines methods to interact with wallet data. The
// debit path is the only shared mutable state in the system, so mutation
// goes through GetByUserIDForUpdate inside a unit of work.
type WalletRepository interface {
	// GetByUserID retrieves the wallet owned by the given user
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet row
	// - ErrDatabaseConnection: If database connection fails
	GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// GetByUserIDForUpdate retrieves the wallet with an exclusive row lock.
	// Must be called inside an open transaction; the lock is held until the
	// surrounding transaction commits or rolls back, serializing concurrent
	// debits against the same wallet.
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet row
	// - ErrWalletLocked: If the lock cannot be obtained
	// - ErrDatabaseConnection: If database connection fails
	GetByUserIDForUpdate(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// Create creates a wallet for a freshly registered user
	//
	// Possible errors:
	// - ErrConstraintViolation: If the wallet number or user is duplicated
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, wallet *entity.Wallet) error

	// UpdateBalance persists a new balance for the wallet
	//
	// Possible errors:
	// - ErrWalletNotFound: If the wallet doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateBalance(ctx context.Context, wallet *entity.Wallet) error

	// WalletNumberExists reports whether a wallet number is already taken.
	// Used by the rejection-sampling wallet number generator.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	WalletNumberExists(ctx context.Context, walletNumber string) (bool, error)
}
