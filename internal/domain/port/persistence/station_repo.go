package persistence

import (
	"context"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
)

// StationRepository defines methods to interact with station data
type StationRepository interface {
	// GetByID retrieves a station by ID
	//
	// Possible errors:
	// - ErrStationNotFound: If station with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Station, error)

	// GetByPhoneNumber retrieves a station by its login phone number
	//
	// Possible errors:
	// - ErrStationNotFound: If no station carries this phone number
	// - ErrDatabaseConnection: If database connection fails
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Station, error)

	// Create creates a new station and assigns its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If the phone number is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, station *entity.Station) error

	// Update persists station changes (availability, price)
	//
	// Possible errors:
	// - ErrStationNotFound: If station doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, station *entity.Station) error

	// ListActive returns all active stations for public browsing
	ListActive(ctx context.Context) ([]*entity.Station, error)
}

// WorkerRepository defines methods to interact with station worker data
type WorkerRepository interface {
	// GetByPhoneNumber retrieves a worker by its login phone number
	//
	// Possible errors:
	// - ErrWorkerNotFound: If no worker carries this phone number
	// - ErrDatabaseConnection: If database connection fails
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Worker, error)

	// Create creates a new worker for a station
	//
	// Possible errors:
	// - ErrDuplicateWorker: If the phone number is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, worker *entity.Worker) error
}
