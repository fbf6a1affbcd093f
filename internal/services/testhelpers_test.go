package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lfl-logistics/onboarding-service/internal/cache"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
	"github.com/lfl-logistics/onboarding-service/internal/repositories/postgres"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
	"github.com/lfl-logistics/onboarding-service/pkg"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := pkg.MigrateSchema(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

func newTestRepo(t *testing.T) (repositories.Repository, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	repo := postgres.NewPostgreSQLRepository(postgres.RepositoryConfig{DB: db})
	return repo, db
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCache(t *testing.T) *cache.CacheManager {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return cache.NewCacheManager(client)
}

func newTestAuth(repo repositories.Repository, db *gorm.DB) AuthService {
	return NewAuthService(repo, db, newTestLogger(), validator.New(), "test-secret", "onboarding-service", time.Hour)
}

func validCarrierRequest() *CarrierOnboardRequest {
	return &CarrierOnboardRequest{
		DOTNumber:      "1234567",
		MCNumber:       "MC123456",
		LegalName:      "Carolina Freight LLC",
		City:           "Charlotte",
		State:          "NC",
		ContactName:    "Jordan Reyes",
		ContactEmail:   "dispatch@carolinafreight.example",
		ContactPhone:   "704-555-0142",
		Password:       "TestPass123",
		EquipmentTypes: []string{"Dry Van", "Reefer"},
		PreferredLanes: []string{"Southeast", "Midwest"},
	}
}

func validShipperRequest() *ShipperOnboardRequest {
	return &ShipperOnboardRequest{
		LegalName:          "Peachtree Goods Inc",
		City:               "Atlanta",
		State:              "GA",
		ContactName:        "Morgan Ellis",
		ContactEmail:       "logistics@peachtreegoods.example",
		ContactPhone:       "404-555-0188",
		Password:           "TestPass123",
		CommodityType:      "Consumer Packaged Goods",
		MonthlyVolume:      "50-100 loads",
		PreferredEquipment: []string{"Dry Van"},
	}
}
