package station

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/domain/port/persistence"
)

// UseCase handles station-side business logic: station and worker login,
// worker registration, and availability/pricing management.
type UseCase struct {
	stationRepo persistence.StationRepository
	workerRepo  persistence.WorkerRepository
	logger      coreport.Logger
}

// NewUseCase creates a new station use case
func NewUseCase(
	stationRepo persistence.StationRepository,
	workerRepo persistence.WorkerRepository,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		stationRepo: stationRepo,
		workerRepo:  workerRepo,
		logger:      logger,
	}
}

// ListActiveStations returns all active stations for public browsing
func (u *UseCase) ListActiveStations(ctx context.Context) ([]*entity.Station, error) {
	return u.stationRepo.ListActive(ctx)
}
