package station

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
)

// Login authenticates a station by phone number and passcode
//
// Possible errors:
// - ErrStationNotFound: If the phone number is unknown
// - ErrInvalidCredentials: If the passcode does not match
// - ErrDatabaseConnection: If database connection fails
func (u *UseCase) Login(ctx context.Context, phoneNumber, passcode string) (*entity.Station, error) {
	st, err := u.stationRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	if err := st.CheckPasscode(passcode); err != nil {
		return nil, err
	}

	return st, nil
}

// WorkerLogin authenticates a station worker by phone number and passcode
//
// Possible errors:
// - ErrWorkerNotFound: If the phone number is unknown
// - ErrInvalidCredentials: If the passcode does not match
// - ErrDatabaseConnection: If database connection fails
func (u *UseCase) WorkerLogin(ctx context.Context, phoneNumber, passcode string) (*entity.Worker, error) {
	worker, err := u.workerRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	if err := worker.CheckPasscode(passcode); err != nil {
		return nil, err
	}

	return worker, nil
}
