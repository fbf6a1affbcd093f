package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lfl-logistics/onboarding-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type CarrierFilters struct {
	Status    *models.AccountStatus `json:"status"`
	State     *string               `json:"state"`
	DateFrom  *time.Time            `json:"dateFrom"`
	DateTo    *time.Time            `json:"dateTo"`
	Limit     int                   `json:"limit"`
	Offset    int                   `json:"offset"`
	SortBy    string                `json:"sortBy"`    // "created_at", "legal_name", "status"
	SortOrder string                `json:"sortOrder"` // "asc", "desc"
}

type ShipperFilters struct {
	Status    *models.AccountStatus `json:"status"`
	State     *string               `json:"state"`
	DateFrom  *time.Time            `json:"dateFrom"`
	DateTo    *time.Time            `json:"dateTo"`
	Limit     int                   `json:"limit"`
	Offset    int                   `json:"offset"`
	SortBy    string                `json:"sortBy"`
	SortOrder string                `json:"sortOrder"`
}

type UserFilters struct {
	Role   *models.UserRole `json:"role"`
	Query  string           `json:"query"` // Search for name or email
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// ===== SHARED STATISTICS STRUCTS =====

// OnboardingStats are the aggregate counts shown on the admin dashboard.
type OnboardingStats struct {
	TotalCarriers    int64 `json:"totalCarriers"`
	PendingCarriers  int64 `json:"pendingCarriers"`
	ApprovedCarriers int64 `json:"approvedCarriers"`
	TotalShippers    int64 `json:"totalShippers"`
	PendingShippers  int64 `json:"pendingShippers"`
	ApprovedShippers int64 `json:"approvedShippers"`
}

// ===== SHARED ERRORS =====

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// IsNotFoundError reports whether err represents a missing record.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
