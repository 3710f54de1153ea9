package user

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
)

// RegisterVehicleRequest carries the vehicle registration fields
type RegisterVehicleRequest struct {
	VehicleNumber string
	VehicleMake   string
	VehicleModel  string
}

// RegisterVehicle creates a vehicle owned by the given user
//
// Possible errors:
// - ErrUserNotFound: If the user doesn't exist
// - ErrInvalidRequest: If the registration number is empty
// - ErrDatabaseConnection: If database connection fails
func (u *UseCase) RegisterVehicle(ctx context.Context, userID uint64, req RegisterVehicleRequest) (*entity.Vehicle, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	vehicle, err := entity.NewVehicle(userID, req.VehicleNumber, req.VehicleMake, req.VehicleModel)
	if err != nil {
		return nil, err
	}

	if err := u.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	u.logger.Info("Vehicle registered", map[string]any{
		"vehicle_id": vehicle.ID,
		"user_id":    userID,
	})
	return vehicle, nil
}

// ListVehicles returns all vehicles owned by the given user
func (u *UseCase) ListVehicles(ctx context.Context, userID uint64) ([]*entity.Vehicle, error) {
	return u.vehicleRepo.ListByUser(ctx, userID)
}
