package repository

import (
	"context"
	"fmt"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// VehicleRepository implements VehicleRepository interface using GORM
type VehicleRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewVehicleRepository creates a new VehicleRepository instance
func NewVehicleRepository(db *gorm.DB, logger coreport.Logger) *VehicleRepository {
	return &VehicleRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create registers a vehicle for a user and assigns its ID
func (r *VehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleModel := model.Vehicle{
		UserID:        vehicle.UserID,
		VehicleNumber: vehicle.VehicleNumber,
		VehicleMake:   vehicle.VehicleMake,
		VehicleModel:  vehicle.VehicleModel,
	}

	result := r.db.WithContext(ctx).Create(&vehicleModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating vehicle", map[string]any{
			"user_id": vehicle.UserID,
			"error":   result.Error.Error(),
		})
		if r.errorClassifier.IsConstraintError(result.Error) {
			return errs.ErrConstraintViolation
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	vehicle.ID = vehicleModel.ID
	return nil
}

// ListByUser returns all vehicles owned by the given user
func (r *VehicleRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Vehicle, error) {
	var vehicleModels []model.Vehicle
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&vehicleModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	vehicles := make([]*entity.Vehicle, 0, len(vehicleModels))
	for i := range vehicleModels {
		m := &vehicleModels[i]
		vehicles = append(vehicles, &entity.Vehicle{
			ID:            m.ID,
			UserID:        m.UserID,
			VehicleNumber: m.VehicleNumber,
			VehicleMake:   m.VehicleMake,
			VehicleModel:  m.VehicleModel,
		})
	}
	return vehicles, nil
}
