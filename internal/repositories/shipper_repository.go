package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/lfl-logistics/onboarding-service/internal/models"
)

// ShipperRepository interface for shipper profile operations
type ShipperRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, tx *gorm.DB, shipper *models.ShipperProfile) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.ShipperProfile, error)
	Update(ctx context.Context, tx *gorm.DB, shipper *models.ShipperProfile) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error

	// Targeted updates
	UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.AccountStatus) error

	// Query operations
	List(ctx context.Context, tx *gorm.DB, filters ShipperFilters) ([]*models.ShipperProfile, int64, error)
}
