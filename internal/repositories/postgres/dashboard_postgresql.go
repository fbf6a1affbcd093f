package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
)

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) repositories.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// ===== DASHBOARD STATS =====

func (r *dashboardRepository) GetOnboardingStats(ctx context.Context, tx *gorm.DB) (*repositories.OnboardingStats, error) {
	db := r.getDB(tx)
	stats := &repositories.OnboardingStats{}

	type statusCount struct {
		Status models.AccountStatus
		Count  int64
	}

	var carrierCounts []statusCount
	if err := db.WithContext(ctx).
		Model(&models.CarrierProfile{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&carrierCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count carriers by status: %w", err)
	}

	for _, c := range carrierCounts {
		stats.TotalCarriers += c.Count
		switch c.Status {
		case models.StatusPending:
			stats.PendingCarriers = c.Count
		case models.StatusApproved:
			stats.ApprovedCarriers = c.Count
		}
	}

	var shipperCounts []statusCount
	if err := db.WithContext(ctx).
		Model(&models.ShipperProfile{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&shipperCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count shippers by status: %w", err)
	}

	for _, c := range shipperCounts {
		stats.TotalShippers += c.Count
		switch c.Status {
		case models.StatusPending:
			stats.PendingShippers = c.Count
		case models.StatusApproved:
			stats.ApprovedShippers = c.Count
		}
	}

	return stats, nil
}

// ===== REGISTRATION TRENDS =====

func (r *dashboardRepository) GetRegistrationTrends(ctx context.Context, tx *gorm.DB, days int) ([]repositories.RegistrationTrendData, error) {
	db := r.getDB(tx)

	if days <= 0 {
		days = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)

	// Day bucketing happens here rather than in SQL so the same query
	// works against both postgres and the sqlite driver used in tests.
	collect := func(model interface{}) (map[time.Time]int64, error) {
		var stamps []time.Time
		if err := db.WithContext(ctx).
			Model(model).
			Where("created_at >= ?", since).
			Pluck("created_at", &stamps).Error; err != nil {
			return nil, err
		}
		out := make(map[time.Time]int64)
		for _, ts := range stamps {
			out[ts.UTC().Truncate(24*time.Hour)]++
		}
		return out, nil
	}

	carrierByDay, err := collect(&models.CarrierProfile{})
	if err != nil {
		return nil, fmt.Errorf("failed to get carrier registration trends: %w", err)
	}
	shipperByDay, err := collect(&models.ShipperProfile{})
	if err != nil {
		return nil, fmt.Errorf("failed to get shipper registration trends: %w", err)
	}

	trends := make([]repositories.RegistrationTrendData, 0, days)
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i)
		trends = append(trends, repositories.RegistrationTrendData{
			Date:     day,
			Carriers: carrierByDay[day],
			Shippers: shipperByDay[day],
		})
	}

	return trends, nil
}
