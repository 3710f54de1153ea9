package station

import (
	"context"
	"errors"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
)

// RegisterWorkerRequest carries the worker registration fields
type RegisterWorkerRequest struct {
	Name        string
	PhoneNumber string
	Passcode    string
}

// RegisterWorker creates a worker under the authenticated station
//
// Possible errors:
// - ErrStationNotFound: If the station doesn't exist
// - ErrDuplicateWorker: If the phone number is already registered
// - ErrDatabaseConnection: If database connection fails
func (u *UseCase) RegisterWorker(ctx context.Context, stationID uint64, req RegisterWorkerRequest) (*entity.Worker, error) {
	if _, err := u.stationRepo.GetByID(ctx, stationID); err != nil {
		return nil, err
	}

	// Reject an already-registered phone number up front
	_, err := u.workerRepo.GetByPhoneNumber(ctx, req.PhoneNumber)
	if err == nil {
		return nil, errs.ErrDuplicateWorker
	}
	if !errors.Is(err, errs.ErrWorkerNotFound) {
		return nil, err
	}

	worker, err := entity.NewWorker(stationID, req.Name, req.PhoneNumber, req.Passcode)
	if err != nil {
		return nil, err
	}

	if err := u.workerRepo.Create(ctx, worker); err != nil {
		return nil, err
	}

	u.logger.Info("Worker registered", map[string]any{
		"worker_id":  worker.ID,
		"station_id": stationID,
	})
	return worker, nil
}
