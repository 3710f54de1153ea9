package entity

import (
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
)

// Worker is a station-side principal that authenticates with a phone
// number and passcode. Every worker belongs to exactly one station.
type Worker struct {
	ID          uint64
	StationID   uint64
	Name        string
	PhoneNumber string
	Passcode    string
}

// NewWorker creates a worker for the given station
func NewWorker(stationID uint64, name, phoneNumber, passcode string) (*Worker, error) {
	if stationID == 0 {
		return nil, errs.ErrStationNotFound
	}
	if err := validatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	if passcode == "" {
		return nil, errs.ErrInvalidCredentials
	}

	return &Worker{
		StationID:   stationID,
		Name:        name,
		PhoneNumber: phoneNumber,
		Passcode:    passcode,
	}, nil
}

// CheckPasscode verifies a login passcode
func (w *Worker) CheckPasscode(passcode string) error {
	if w.Passcode != passcode {
		return errs.ErrInvalidCredentials
	}
	return nil
}
