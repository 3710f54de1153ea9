package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fuelgrid/cng-marketplace/internal/domain/entity"
	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// BookingRepository implements BookingRepository interface using GORM
type BookingRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBookingRepository creates a new BookingRepository instance
func NewBookingRepository(db *gorm.DB, logger coreport.Logger) *BookingRepository {
	return &BookingRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create saves a new booking and assigns its ID
func (r *BookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingModel := model.Booking{
		UserID:        booking.UserID,
		StationID:     booking.StationID,
		BookingSlotID: booking.BookingSlotID,
		Amount:        booking.AmountInPaise,
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&bookingModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating booking", map[string]any{
			"user_id":    booking.UserID,
			"station_id": booking.StationID,
			"error":      result.Error.Error(),
		})
		if r.errorClassifier.IsConstraintError(result.Error) {
			return errs.ErrConstraintViolation
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	booking.ID = bookingModel.ID
	return nil
}

// ListByUser returns all bookings created by the given user
func (r *BookingRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Booking, error) {
	var bookingModels []model.Booking
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookingModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	bookings := make([]*entity.Booking, 0, len(bookingModels))
	for i := range bookingModels {
		m := &bookingModels[i]
		bookings = append(bookings, &entity.Booking{
			ID:            m.ID,
			UserID:        m.UserID,
			StationID:     m.StationID,
			BookingSlotID: m.BookingSlotID,
			AmountInPaise: m.Amount,
			Status:        m.Status,
			CreatedAt:     m.CreatedAt,
		})
	}
	return bookings, nil
}

// stationOrderRow is the scan target for the station dashboard join
type stationOrderRow struct {
	OrderID       uint64
	UserName      string
	StationName   string
	SlotStartTime time.Time
	SlotEndTime   time.Time
	Amount        int64
	Status        string
}

// ListByStation returns the joined station order rows (user name, station
// name, slot window) for the station dashboard
func (r *BookingRepository) ListByStation(ctx context.Context, stationID uint64) ([]*entity.StationOrder, error) {
	var rows []stationOrderRow
	result := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id as order_id,
			users.name as user_name,
			stations.name as station_name,
			booking_slots.start_time as slot_start_time,
			booking_slots.end_time as slot_end_time,
			bookings.amount as amount,
			bookings.status as status`).
		Joins("JOIN users ON users.id = bookings.user_id").
		Joins("JOIN stations ON stations.id = bookings.station_id").
		Joins("JOIN booking_slots ON booking_slots.id = bookings.booking_slot_id").
		Where("bookings.station_id = ?", stationID).
		Order("bookings.created_at desc").
		Scan(&rows)
	if result.Error != nil {
		r.logger.Error("Database error when listing station orders", map[string]any{
			"station_id": stationID,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	orders := make([]*entity.StationOrder, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		orders = append(orders, &entity.StationOrder{
			OrderID:       row.OrderID,
			UserName:      row.UserName,
			StationName:   row.StationName,
			SlotStartTime: row.SlotStartTime,
			SlotEndTime:   row.SlotEndTime,
			Amount:        entity.PaiseToString(row.Amount),
			Status:        row.Status,
		})
	}
	return orders, nil
}

// BookingSlotRepository implements BookingSlotRepository interface using GORM
type BookingSlotRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBookingSlotRepository creates a new BookingSlotRepository instance
func NewBookingSlotRepository(db *gorm.DB, logger coreport.Logger) *BookingSlotRepository {
	return &BookingSlotRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a slot by ID
func (r *BookingSlotRepository) GetByID(ctx context.Context, id uint64) (*entity.BookingSlot, error) {
	var slotModel model.BookingSlot
	result := r.db.WithContext(ctx).First(&slotModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBookingSlotNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.BookingSlot{
		ID:        slotModel.ID,
		StartTime: slotModel.StartTime,
		EndTime:   slotModel.EndTime,
	}, nil
}

// List returns all reservable slots ordered by start time
func (r *BookingSlotRepository) List(ctx context.Context) ([]*entity.BookingSlot, error) {
	var slotModels []model.BookingSlot
	result := r.db.WithContext(ctx).Order("start_time").Find(&slotModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	slots := make([]*entity.BookingSlot, 0, len(slotModels))
	for i := range slotModels {
		slots = append(slots, &entity.BookingSlot{
			ID:        slotModels[i].ID,
			StartTime: slotModels[i].StartTime,
			EndTime:   slotModels[i].EndTime,
		})
	}
	return slots, nil
}

// Create saves a new slot (used by the migration seeder)
func (r *BookingSlotRepository) Create(ctx context.Context, slot *entity.BookingSlot) error {
	slotModel := model.BookingSlot{
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	}

	result := r.db.WithContext(ctx).Create(&slotModel)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	slot.ID = slotModel.ID
	return nil
}
