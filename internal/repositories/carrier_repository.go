package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/lfl-logistics/onboarding-service/internal/models"
)

// CarrierRepository interface for carrier profile operations
type CarrierRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, tx *gorm.DB, carrier *models.CarrierProfile) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.CarrierProfile, error)
	Update(ctx context.Context, tx *gorm.DB, carrier *models.CarrierProfile) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error

	// Targeted updates
	UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.AccountStatus) error

	// Query operations
	List(ctx context.Context, tx *gorm.DB, filters CarrierFilters) ([]*models.CarrierProfile, int64, error)
	ExistsByDOTNumber(ctx context.Context, tx *gorm.DB, dotNumber string) (bool, error)
}
