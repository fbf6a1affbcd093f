package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lfl-logistics/onboarding-service/internal/cache"
	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
)

const registrationSuccessMessage = "Registration successful! Your application is pending admin approval."

type registrationService struct {
	repo         repositories.Repository
	db           *gorm.DB
	logger       *slog.Logger
	validator    *validator.Validator
	auth         AuthService
	analyzer     ProfileAnalyzer
	notifier     NotificationEventService
	cacheManager *cache.CacheManager
}

func NewRegistrationService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, auth AuthService, analyzer ProfileAnalyzer, notifier NotificationEventService, cacheManager *cache.CacheManager) RegistrationService {
	return &registrationService{
		repo:         repo,
		db:           db,
		logger:       logger,
		validator:    validator,
		auth:         auth,
		analyzer:     analyzer,
		notifier:     notifier,
		cacheManager: cacheManager,
	}
}

// ===== CARRIER REGISTRATION =====

func (s *registrationService) RegisterCarrier(ctx context.Context, req *CarrierOnboardRequest) (*RegistrationResult, error) {
	s.logger.Info("Registering carrier", "legal_name", req.LegalName, "dot_number", req.DOTNumber)

	bv := s.validator.GetBusinessValidator()

	// All absent required fields are reported together
	if missing := bv.MissingCarrierFields(req); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	// Format checks run only on present fields
	if errs := bv.ValidateCredentials(req.ContactEmail, req.Password); len(errs) > 0 {
		return nil, errs
	}

	if err := s.checkEmailAvailable(ctx, req.ContactEmail); err != nil {
		return nil, err
	}

	// One carrier account per FMCSA authority
	taken, err := s.repo.Carrier().ExistsByDOTNumber(ctx, nil, req.DOTNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check DOT number uniqueness: %w", err)
	}
	if taken {
		return nil, ErrDOTAlreadyRegistered
	}

	profile := s.buildCarrierProfile(req)

	// Best-effort enrichment; failure is logged and ignored
	if analysis, err := s.analyzer.AnalyzeCarrier(ctx, profile); err != nil {
		s.logger.Warn("Carrier analysis failed", "error", err, "carrier_id", profile.ID)
	} else {
		profile.Analysis = analysis
	}

	passwordHash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        req.ContactEmail,
		PasswordHash: passwordHash,
		Name:         req.ContactName,
		CompanyName:  req.LegalName,
		Role:         models.RoleCarrier,
		Status:       models.StatusPending,
		CarrierID:    &profile.ID,
	}

	// Profile, user, and the cross-reference are written atomically. The
	// unique index on users.email closes the race between two concurrent
	// registrations with the same address.
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
		return nil, fmt.Errorf("carrier registration failed: %w", err)
	}

	s.logger.Info("Carrier registered", "carrier_id", profile.ID, "user_id", user.ID)

	// Best-effort notifications; failures are logged and ignored
	if err := s.notifier.NotifyAdminNewApplication(ctx, "carrier", profile.ID, profile.LegalName, profile.ContactEmail); err != nil {
		s.logger.Warn("Admin notification failed", "error", err, "carrier_id", profile.ID)
	}
	if err := s.notifier.PublishRegistered(ctx, "carrier", profile.ID, user.ID); err != nil {
		s.logger.Warn("Registration event publish failed", "error", err, "carrier_id", profile.ID)
	}

	return &RegistrationResult{
		Success:   true,
		Message:   registrationSuccessMessage,
		CarrierID: profile.ID,
	}, nil
}

// ===== SHIPPER REGISTRATION =====

func (s *registrationService) RegisterShipper(ctx context.Context, req *ShipperOnboardRequest) (*RegistrationResult, error) {
	s.logger.Info("Registering shipper", "legal_name", req.LegalName)

	bv := s.validator.GetBusinessValidator()

	if missing := bv.MissingShipperFields(req); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	if errs := bv.ValidateCredentials(req.ContactEmail, req.Password); len(errs) > 0 {
		return nil, errs
	}

	if err := s.checkEmailAvailable(ctx, req.ContactEmail); err != nil {
		return nil, err
	}

	profile := s.buildShipperProfile(req)

	if analysis, err := s.analyzer.AnalyzeShipper(ctx, profile); err != nil {
		s.logger.Warn("Shipper analysis failed", "error", err, "shipper_id", profile.ID)
	} else {
		profile.Analysis = analysis
	}

	passwordHash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        req.ContactEmail,
		PasswordHash: passwordHash,
		Name:         req.ContactName,
		CompanyName:  req.LegalName,
		Role:         models.RoleShipper,
		Status:       models.StatusPending,
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
		return nil, fmt.Errorf("shipper registration failed: %w", err)
	}

	s.logger.Info("Shipper registered", "shipper_id", profile.ID, "user_id", user.ID)

	if err := s.notifier.NotifyAdminNewApplication(ctx, "shipper", profile.ID, profile.LegalName, profile.ContactEmail); err != nil {
		s.logger.Warn("Admin notification failed", "error", err, "shipper_id", profile.ID)
	}
	if err := s.notifier.PublishRegistered(ctx, "shipper", profile.ID, user.ID); err != nil {
		s.logger.Warn("Registration event publish failed", "error", err, "shipper_id", profile.ID)
	}

	return &RegistrationResult{
		Success:   true,
		Message:   registrationSuccessMessage,
		ShipperID: profile.ID,
	}, nil
}

// ===== HELPERS =====

func (s *registrationService) checkEmailAvailable(ctx context.Context, email string) error {
	key := strings.ToLower(strings.TrimSpace(email))

	// Only positive hits are cached; a deleted account's address may read
	// as taken for up to the TTL.
	if cached, err := s.cacheManager.Exists.Exists(ctx, key); err == nil && cached {
		return ErrEmailAlreadyRegistered
	}

	exists, err := s.repo.User().ExistsByEmail(ctx, nil, email)
	if err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		if err := s.cacheManager.Exists.Set(ctx, key, true, cache.ExistsCacheConfig.TTL); err != nil {
			s.logger.Warn("Failed to cache email existence", "error", err)
		}
		return ErrEmailAlreadyRegistered
	}
	return nil
}

func (s *registrationService) buildCarrierProfile(req *CarrierOnboardRequest) *models.CarrierProfile {
	docs := models.CarrierDocuments{}
	for slot, ref := range req.Documents {
		docs.Set(slot, ref)
	}

	now := time.Now()
	return &models.CarrierProfile{
		ID:                  uuid.New().String(),
		DOTNumber:           req.DOTNumber,
		MCNumber:            req.MCNumber,
		AuthorityDate:       req.AuthorityDate,
		LegalName:           req.LegalName,
		DBAName:             req.DBAName,
		EIN:                 req.EIN,
		Address:             req.Address,
		City:                req.City,
		State:               req.State,
		Zip:                 req.Zip,
		ContactName:         req.ContactName,
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
		EquipmentTypes:      datatypes.NewJSONSlice(req.EquipmentTypes),
		PreferredLanes:      datatypes.NewJSONSlice(req.PreferredLanes),
		Documents:           datatypes.NewJSONType(docs),
		Status:              models.StatusPending,
		OnboardingCompleted: true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func (s *registrationService) buildShipperProfile(req *ShipperOnboardRequest) *models.ShipperProfile {
	docs := models.ShipperDocuments{}
	for slot, ref := range req.Documents {
		docs.Set(slot, ref)
	}

	now := time.Now()
	return &models.ShipperProfile{
		ID:                  uuid.New().String(),
		LegalName:           req.LegalName,
		DBAName:             req.DBAName,
		EIN:                 req.EIN,
		Address:             req.Address,
		City:                req.City,
		State:               req.State,
		Zip:                 req.Zip,
		ContactName:         req.ContactName,
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
		CommodityType:       req.CommodityType,
		MonthlyVolume:       req.MonthlyVolume,
		AverageValue:        req.AverageValue,
		PreferredEquipment:  datatypes.NewJSONSlice(req.PreferredEquipment),
		Documents:           datatypes.NewJSONType(docs),
		Status:              models.StatusPending,
		OnboardingCompleted: true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
