package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
)

type carrierRepository struct {
	db *gorm.DB
}

func NewCarrierRepository(db *gorm.DB) repositories.CarrierRepository {
	return &carrierRepository{db: db}
}

// ===== BASIC CRUD OPERATIONS =====

func (r *carrierRepository) Create(ctx context.Context, tx *gorm.DB, carrier *models.CarrierProfile) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(carrier).Error; err != nil {
		return r.handleDBError(err, "create carrier")
	}
	return nil
}

func (r *carrierRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.CarrierProfile, error) {
	db := r.getDB(tx)
	var carrier models.CarrierProfile

	if err := db.WithContext(ctx).
		First(&carrier, "id = ?", id).Error; err != nil {
		return nil, r.handleDBError(err, "get carrier by id")
	}

	return &carrier, nil
}

func (r *carrierRepository) Update(ctx context.Context, tx *gorm.DB, carrier *models.CarrierProfile) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Save(carrier).Error; err != nil {
		return r.handleDBError(err, "update carrier")
	}
	return nil
}

func (r *carrierRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Delete(&models.CarrierProfile{}, "id = ?", id).Error; err != nil {
		return r.handleDBError(err, "delete carrier")
	}
	return nil
}

// ===== TARGETED UPDATES =====

func (r *carrierRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.AccountStatus) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.CarrierProfile{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return r.handleDBError(result.Error, "update carrier status")
	}
	if result.RowsAffected == 0 {
		return r.handleDBError(gorm.ErrRecordNotFound, "update carrier status")
	}
	return nil
}

// ===== QUERY OPERATIONS =====

func (r *carrierRepository) List(ctx context.Context, tx *gorm.DB, filters repositories.CarrierFilters) ([]*models.CarrierProfile, int64, error) {
	db := r.getDB(tx)
	var carriers []*models.CarrierProfile
	var total int64

	query := db.WithContext(ctx).Model(&models.CarrierProfile{})

	// Apply filters
	query = applyCarrierFilters(query, filters)

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDBError(err, "count carriers")
	}

	// Apply pagination and sorting
	query = applyPaginationAndSort(query, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset)

	if err := query.Find(&carriers).Error; err != nil {
		return nil, 0, r.handleDBError(err, "list carriers")
	}

	return carriers, total, nil
}

func (r *carrierRepository) ExistsByDOTNumber(ctx context.Context, tx *gorm.DB, dotNumber string) (bool, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.CarrierProfile{}).
		Where("dot_number = ?", dotNumber).
		Count(&count).Error; err != nil {
		return false, r.handleDBError(err, "check carrier dot number exists")
	}

	return count > 0, nil
}

// ===== HELPERS =====

func (r *carrierRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *carrierRepository) handleDBError(err error, operation string) error {
	return handleDBError(err, operation)
}
