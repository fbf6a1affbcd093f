package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
)

// Seeded development accounts. All share the same well-known password.
const (
	seedPassword     = "TestPass123"
	seedAdminEmail   = "admin@lfllogistics.com"
	seedCarrierEmail = "testcarrier@example.com"
	seedShipperEmail = "testshipper@example.com"
)

type setupService struct {
	repo   repositories.Repository
	db     *gorm.DB
	logger *slog.Logger
	auth   AuthService
}

func NewSetupService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, auth AuthService) SetupService {
	return &setupService{
		repo:   repo,
		db:     db,
		logger: logger,
		auth:   auth,
	}
}

// SeedDefaults creates the admin, test carrier, and test shipper accounts.
// Each account is skipped if its email is already registered, so the call
// is safe to repeat.
func (s *setupService) SeedDefaults(ctx context.Context) error {
	passwordHash, err := s.auth.HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	if err := s.seedAdmin(ctx, passwordHash); err != nil {
		return err
	}
	if err := s.seedCarrier(ctx, passwordHash); err != nil {
		return err
	}
	if err := s.seedShipper(ctx, passwordHash); err != nil {
		return err
	}

	return nil
}

func (s *setupService) seedAdmin(ctx context.Context, passwordHash string) error {
	exists, err := s.repo.User().ExistsByEmail(ctx, nil, seedAdminEmail)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	admin := &models.User{
		ID:           uuid.New().String(),
		Email:        seedAdminEmail,
		PasswordHash: passwordHash,
		Name:         "Administrator",
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	}
	if err := s.repo.User().Create(ctx, nil, admin); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	s.logger.Info("Seeded admin account", "email", seedAdminEmail)
	return nil
}

func (s *setupService) seedCarrier(ctx context.Context, passwordHash string) error {
	exists, err := s.repo.User().ExistsByEmail(ctx, nil, seedCarrierEmail)
	if err != nil {
		return fmt.Errorf("failed to check test carrier account: %w", err)
	}
	if exists {
		return nil
	}

	now := time.Now()
	profile := &models.CarrierProfile{
		ID:                  uuid.New().String(),
		DOTNumber:           "1234567",
		MCNumber:            "MC123456",
		AuthorityDate:       "2024-01-01",
		LegalName:           "Test Carrier LLC",
		DBAName:             "Test Transport",
		EIN:                 "12-3456789",
		Address:             "123 Carrier Street",
		City:                "Charlotte",
		State:               "NC",
		Zip:                 "28202",
		ContactName:         "John Carrier",
		ContactEmail:        seedCarrierEmail,
		ContactPhone:        "(704) 555-0100",
		EquipmentTypes:      datatypes.NewJSONSlice([]string{"Dry Van", "Refrigerated"}),
		PreferredLanes:      datatypes.NewJSONSlice([]string{"Southeast", "Northeast"}),
		Status:              models.StatusApproved,
		OnboardingCompleted: true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        seedCarrierEmail,
		PasswordHash: passwordHash,
		Name:         "John Carrier",
		CompanyName:  profile.LegalName,
		Role:         models.RoleCarrier,
		Status:       models.StatusApproved,
		CarrierID:    &profile.ID,
	}

	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.Carrier().Create(ctx, nil, profile); err != nil {
			return err
		}
		if err := txRepo.User().Create(ctx, nil, user); err != nil {
			return err
		}
		profile.UserID = &user.ID
		return txRepo.Carrier().Update(ctx, nil, profile)
	})
	if err != nil {
		return fmt.Errorf("failed to seed test carrier: %w", err)
	}

	s.logger.Info("Seeded test carrier account", "email", seedCarrierEmail)
	return nil
}

func (s *setupService) seedShipper(ctx context.Context, passwordHash string) error {
	exists, err := s.repo.User().ExistsByEmail(ctx, nil, seedShipperEmail)
	if err != nil {
		return fmt.Errorf("failed to check test shipper account: %w", err)
	}
	if exists {
		return nil
	}

	now := time.Now()
	profile := &models.ShipperProfile{
		ID:                  uuid.New().String(),
		LegalName:           "Test Shipper Corp",
		DBAName:             "Test Logistics",
		EIN:                 "98-7654321",
		Address:             "456 Shipper Avenue",
		City:                "Atlanta",
		State:               "GA",
		Zip:                 "30303",
		ContactName:         "Jane Shipper",
		ContactEmail:        seedShipperEmail,
		ContactPhone:        "(404) 555-0200",
		CommodityType:       "General Freight",
		MonthlyVolume:       "50-100 loads",
		AverageValue:        "$50,000",
		PreferredEquipment:  datatypes.NewJSONSlice([]string{"Dry Van", "Flatbed"}),
		Status:              models.StatusApproved,
		OnboardingCompleted: true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        seedShipperEmail,
		PasswordHash: passwordHash,
		Name:         "Jane Shipper",
		CompanyName:  profile.LegalName,
		Role:         models.RoleShipper,
		Status:       models.StatusApproved,
		ShipperID:    &profile.ID,
	}

	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.Shipper().Create(ctx, nil, profile); err != nil {
			return err
		}
		if err := txRepo.User().Create(ctx, nil, user); err != nil {
			return err
		}
		profile.UserID = &user.ID
		return txRepo.Shipper().Update(ctx, nil, profile)
	})
	if err != nil {
		return fmt.Errorf("failed to seed test shipper: %w", err)
	}

	s.logger.Info("Seeded test shipper account", "email", seedShipperEmail)
	return nil
}
