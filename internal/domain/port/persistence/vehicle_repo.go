package persistence

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
)

// VehicleRepository defines methods to interact with vehicle data
type VehicleRepository interface {
	// Create registers a vehicle for a user and assigns its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If the owning user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, vehicle *entity.Vehicle) error

	// ListByUser returns all vehicles owned by the given user
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Vehicle, error)
}
