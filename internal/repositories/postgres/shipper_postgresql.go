package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
)

type shipperRepository struct {
	db *gorm.DB
}

func NewShipperRepository(db *gorm.DB) repositories.ShipperRepository {
	return &shipperRepository{db: db}
}

// ===== BASIC CRUD OPERATIONS =====

func (r *shipperRepository) Create(ctx context.Context, tx *gorm.DB, shipper *models.ShipperProfile) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(shipper).Error; err != nil {
		return r.handleDBError(err, "create shipper")
	}
	return nil
}

func (r *shipperRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.ShipperProfile, error) {
	db := r.getDB(tx)
	var shipper models.ShipperProfile

	if err := db.WithContext(ctx).
		First(&shipper, "id = ?", id).Error; err != nil {
		return nil, r.handleDBError(err, "get shipper by id")
	}

	return &shipper, nil
}

func (r *shipperRepository) Update(ctx context.Context, tx *gorm.DB, shipper *models.ShipperProfile) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Save(shipper).Error; err != nil {
		return r.handleDBError(err, "update shipper")
	}
	return nil
}

func (r *shipperRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Delete(&models.ShipperProfile{}, "id = ?", id).Error; err != nil {
		return r.handleDBError(err, "delete shipper")
	}
	return nil
}

// ===== TARGETED UPDATES =====

func (r *shipperRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.AccountStatus) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.ShipperProfile{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return r.handleDBError(result.Error, "update shipper status")
	}
	if result.RowsAffected == 0 {
		return r.handleDBError(gorm.ErrRecordNotFound, "update shipper status")
	}
	return nil
}

// ===== QUERY OPERATIONS =====

func (r *shipperRepository) List(ctx context.Context, tx *gorm.DB, filters repositories.ShipperFilters) ([]*models.ShipperProfile, int64, error) {
	db := r.getDB(tx)
	var shippers []*models.ShipperProfile
	var total int64

	query := db.WithContext(ctx).Model(&models.ShipperProfile{})

	// Apply filters
	query = applyShipperFilters(query, filters)

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDBError(err, "count shippers")
	}

	// Apply pagination and sorting
	query = applyPaginationAndSort(query, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset)

	if err := query.Find(&shippers).Error; err != nil {
		return nil, 0, r.handleDBError(err, "list shippers")
	}

	return shippers, total, nil
}

// ===== HELPERS =====

func (r *shipperRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *shipperRepository) handleDBError(err error, operation string) error {
	return handleDBError(err, operation)
}
