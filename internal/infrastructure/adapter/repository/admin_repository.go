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

// AdminRepository implements AdminRepository interface using GORM
type AdminRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAdminRepository creates a new AdminRepository instance
func NewAdminRepository(db *gorm.DB, logger coreport.Logger) *AdminRepository {
	return &AdminRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminModel model.Admin
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&adminModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAdminNotFound
		}
		r.logger.Error("Database error when getting admin", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.Admin{
		ID:       adminModel.ID,
		Name:     adminModel.Name,
		Email:    adminModel.Email,
		Password: adminModel.Password,
		IsActive: adminModel.IsActive,
	}, nil
}

// Create creates a new admin and assigns its ID
func (r *AdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminModel := model.Admin{
		Name:     admin.Name,
		Email:    admin.Email,
		Password: admin.Password,
		IsActive: admin.IsActive,
	}

	result := r.db.WithContext(ctx).Create(&adminModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating admin", map[string]any{
			"error": result.Error.Error(),
		})
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateAdmin
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	admin.ID = adminModel.ID
	return nil
}
