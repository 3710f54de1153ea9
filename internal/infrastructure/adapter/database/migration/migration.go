package migration

import (
	"context"
	"errors"
	"time"

	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.0.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	// Create migration version table first
	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(context.Background())
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.autoMigrateModels(); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.seedBookingSlots(); err != nil {
		m.logger.Error("Failed to seed booking slots", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.setVersion(context.Background(), CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil // No version found
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	result := m.db.WithContext(ctx).Create(&migrationVersion)
	return result.Error
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels() error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.AutoMigrate(
		&model.User{},
		&model.Wallet{},
		&model.Vehicle{},
		&model.Station{},
		&model.Worker{},
		&model.BookingSlot{},
		&model.Booking{},
		&model.Admin{},
	)
}

// createIndexes creates database indexes beyond what AutoMigrate declares
func (m *MigrationManager) createIndexes() error {
	m.logger.Info("Creating database indexes", nil)

	// Composite index for the station dashboard query
	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_station_created ON bookings (station_id, created_at)").Error; err != nil {
		return err
	}

	// Composite index for the user order history query
	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_user_created ON bookings (user_id, created_at)").Error; err != nil {
		return err
	}

	return nil
}

// seedBookingSlots inserts the reservable hourly windows if none exist.
// Slot rows carry times on a canonical reference date; only the
// time-of-day component is meaningful to clients.
func (m *MigrationManager) seedBookingSlots() error {
	var count int64
	if err := m.db.Model(&model.BookingSlot{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	m.logger.Info("Seeding booking slots", nil)

	refDate := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	slots := make([]model.BookingSlot, 0, 16)
	for hour := 6; hour < 22; hour++ {
		slots = append(slots, model.BookingSlot{
			StartTime: refDate.Add(time.Duration(hour) * time.Hour),
			EndTime:   refDate.Add(time.Duration(hour+1) * time.Hour),
		})
	}

	return m.db.Create(&slots).Error
}
