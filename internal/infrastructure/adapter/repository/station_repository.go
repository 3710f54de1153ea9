package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// StationRepository implements StationRepository interface using GORM
type StationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewStationRepository creates a new StationRepository instance
func NewStationRepository(db *gorm.DB, logger coreport.Logger) *StationRepository {
	return &StationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a station model to an entity
func (r *StationRepository) modelToEntity(stationModel *model.Station) *entity.Station {
	return &entity.Station{
		ID:            stationModel.ID,
		Name:          stationModel.Name,
		PhoneNumber:   stationModel.PhoneNumber,
		Passcode:      stationModel.Passcode,
		Description:   stationModel.Description,
		Latitude:      stationModel.Latitude,
		Longitude:     stationModel.Longitude,
		Address:       stationModel.Address,
		City:          stationModel.City,
		State:         stationModel.State,
		Country:       stationModel.Country,
		PostalCode:    stationModel.PostalCode,
		FuelAvailable: stationModel.FuelAvailable,
		Price:         stationModel.Price,
		IsActive:      stationModel.IsActive,
		CreatedAt:     stationModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *StationRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrStationNotFound
	}
	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a station by ID
func (r *StationRepository) GetByID(ctx context.Context, id uint64) (*entity.Station, error) {
	var stationModel model.Station
	result := r.db.WithContext(ctx).First(&stationModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting station", result.Error)
	}

	return r.modelToEntity(&stationModel), nil
}

// GetByPhoneNumber retrieves a station by its login phone number
func (r *StationRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Station, error) {
	var stationModel model.Station
	result := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&stationModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting station by phone number", result.Error)
	}

	return r.modelToEntity(&stationModel), nil
}

// Create creates a new station and assigns its ID
func (r *StationRepository) Create(ctx context.Context, station *entity.Station) error {
	stationModel := model.Station{
		Name:          station.Name,
		PhoneNumber:   station.PhoneNumber,
		Passcode:      station.Passcode,
		Description:   station.Description,
		Latitude:      station.Latitude,
		Longitude:     station.Longitude,
		Address:       station.Address,
		City:          station.City,
		State:         station.State,
		Country:       station.Country,
		PostalCode:    station.PostalCode,
		FuelAvailable: station.FuelAvailable,
		Price:         station.Price,
		IsActive:      station.IsActive,
		CreatedAt:     station.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&stationModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating station", result.Error)
	}

	station.ID = stationModel.ID

	r.logger.Info("Station created", map[string]any{
		"station_id": station.ID,
	})
	return nil
}

// Update persists station changes
func (r *StationRepository) Update(ctx context.Context, station *entity.Station) error {
	result := r.db.WithContext(ctx).Model(&model.Station{}).
		Where("id = ?", station.ID).
		Updates(map[string]interface{}{
			"fuel_available": station.FuelAvailable,
			"price":          station.Price,
			"is_active":      station.IsActive,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating station", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrStationNotFound
	}
	return nil
}

// ListActive returns all active stations for public browsing
func (r *StationRepository) ListActive(ctx context.Context) ([]*entity.Station, error) {
	var stationModels []model.Station
	result := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&stationModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing stations", result.Error)
	}

	stations := make([]*entity.Station, 0, len(stationModels))
	for i := range stationModels {
		stations = append(stations, r.modelToEntity(&stationModels[i]))
	}
	return stations, nil
}

// WorkerRepository implements WorkerRepository interface using GORM
type WorkerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWorkerRepository creates a new WorkerRepository instance
func NewWorkerRepository(db *gorm.DB, logger coreport.Logger) *WorkerRepository {
	return &WorkerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetByPhoneNumber retrieves a worker by its login phone number
func (r *WorkerRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Worker, error) {
	var workerModel model.Worker
	result := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&workerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.Worker{
		ID:          workerModel.ID,
		StationID:   workerModel.StationID,
		Name:        workerModel.Name,
		PhoneNumber: workerModel.PhoneNumber,
		Passcode:    workerModel.Passcode,
	}, nil
}

// Create creates a new worker for a station
func (r *WorkerRepository) Create(ctx context.Context, worker *entity.Worker) error {
	workerModel := model.Worker{
		StationID:   worker.StationID,
		Name:        worker.Name,
		PhoneNumber: worker.PhoneNumber,
		Passcode:    worker.Passcode,
	}

	result := r.db.WithContext(ctx).Create(&workerModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating worker", map[string]any{
			"station_id": worker.StationID,
			"error":      result.Error.Error(),
		})
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateWorker
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	worker.ID = workerModel.ID
	return nil
}
