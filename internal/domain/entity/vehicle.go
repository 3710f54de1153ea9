package entity

import (
	"strings"

	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
)

// Vehicle belongs to exactly one user
type Vehicle struct {
	ID            uint64
	UserID        uint64
	VehicleNumber string
	VehicleMake   string
	VehicleModel  string
}

// NewVehicle creates a vehicle owned by the given user
func NewVehicle(userID uint64, number, make, model string) (*Vehicle, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(number) == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &Vehicle{
		UserID:        userID,
		VehicleNumber: number,
		VehicleMake:   make,
		VehicleModel:  model,
	}, nil
}
