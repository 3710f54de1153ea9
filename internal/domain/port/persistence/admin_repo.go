package persistence

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
)

// AdminRepository defines methods to interact with admin data
type AdminRepository interface {
	// GetByEmail retrieves an admin by email
	//
	// Possible errors:
	// - ErrAdminNotFound: If no admin carries this email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// Create creates a new admin and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateAdmin: If the email is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, admin *entity.Admin) error
}
