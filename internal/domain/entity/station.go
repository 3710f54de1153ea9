package entity

import (
	"strings"
	"time"

	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
)

// Station is an independently authenticated principal operating a CNG
// fueling location. Stations own workers and are referenced by bookings.
type Station struct {
	ID            uint64
	Name          string
	PhoneNumber   string
	Passcode      string
	Description   string
	Latitude      string
	Longitude     string
	Address       string
	City          string
	State         string
	Country       string
	PostalCode    string
	FuelAvailable bool
	Price         string
	IsActive      bool
	CreatedAt     time.Time
}

// StationDetails carries the registration form fields for a new station
type StationDetails struct {
	Name          string
	PhoneNumber   string
	Passcode      string
	Description   string
	Latitude      string
	Longitude     string
	Address       string
	City          string
	State         string
	Country       string
	PostalCode    string
	FuelAvailable bool
	Price         string
}

// NewStation creates an active station from registration details
func NewStation(details StationDetails, timeProvider coreport.TimeProvider) (*Station, error) {
	if strings.TrimSpace(details.Name) == "" {
		return nil, errs.ErrInvalidRequest
	}
	if err := validatePhoneNumber(details.PhoneNumber); err != nil {
		return nil, err
	}
	if details.Passcode == "" {
		return nil, errs.ErrInvalidCredentials
	}

	return &Station{
		Name:          details.Name,
		PhoneNumber:   details.PhoneNumber,
		Passcode:      details.Passcode,
		Description:   details.Description,
		Latitude:      details.Latitude,
		Longitude:     details.Longitude,
		Address:       details.Address,
		City:          details.City,
		State:         details.State,
		Country:       details.Country,
		PostalCode:    details.PostalCode,
		FuelAvailable: details.FuelAvailable,
		Price:         details.Price,
		IsActive:      true,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// CheckPasscode verifies a login passcode
func (s *Station) CheckPasscode(passcode string) error {
	if s.Passcode != passcode {
		return errs.ErrInvalidCredentials
	}
	return nil
}
