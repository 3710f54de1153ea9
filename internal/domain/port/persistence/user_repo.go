package persistence

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByPhoneNumber retrieves a user by phone number
	// Used for the OTP login and verification flows
	//
	// Possible errors:
	// - ErrUserNotFound: If no user carries this phone number
	// - ErrDatabaseConnection: If database connection fails
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)

	// Create creates a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the phone number is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update persists user changes (OTP rotation, activation)
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error

	// List returns a page of users for the admin listing endpoints
	List(ctx context.Context, skip, limit int) ([]*entity.User, error)

	// Delete removes a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error
}
