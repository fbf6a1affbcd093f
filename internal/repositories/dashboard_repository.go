package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DashboardRepository interface for admin dashboard analytics operations
type DashboardRepository interface {
	// Aggregate counts
	GetOnboardingStats(ctx context.Context, tx *gorm.DB) (*OnboardingStats, error)

	// Registration trends
	GetRegistrationTrends(ctx context.Context, tx *gorm.DB, days int) ([]RegistrationTrendData, error)
}

// Data structures for dashboard responses

type RegistrationTrendData struct {
	Date     time.Time `json:"date"`
	Carriers int64     `json:"carriers"`
	Shippers int64     `json:"shippers"`
}
