package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lfl-logistics/onboarding-service/internal/cache"
	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
)

type profileService struct {
	repo         repositories.Repository
	db           *gorm.DB
	logger       *slog.Logger
	validator    *validator.Validator
	cacheManager *cache.CacheManager
}

func NewProfileService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, cacheManager *cache.CacheManager) ProfileService {
	return &profileService{
		repo:         repo,
		db:           db,
		logger:       logger,
		validator:    validator,
		cacheManager: cacheManager,
	}
}

// ===== CARRIER =====

func (s *profileService) GetCarrier(ctx context.Context, carrierID string) (*models.CarrierProfile, error) {
	var carrier models.CarrierProfile

	err := s.cacheManager.Profile.CacheOrExecute(ctx, "carrier:"+carrierID, &carrier, cache.ProfileCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Carrier().GetByID(ctx, nil, carrierID)
	})
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCarrierNotFound
		}
		return nil, fmt.Errorf("failed to get carrier: %w", err)
	}

	return &carrier, nil
}

// UpdateCarrier applies a shallow merge of the writable fields. Identity and
// workflow fields (role, status, dotNumber, mcNumber, contactEmail,
// createdAt) are never touched from the self-service surface.
func (s *profileService) UpdateCarrier(ctx context.Context, carrierID string, req *CarrierUpdateRequest) (*models.CarrierProfile, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	carrier, err := s.repo.Carrier().GetByID(ctx, nil, carrierID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCarrierNotFound
		}
		return nil, fmt.Errorf("failed to get carrier: %w", err)
	}

	applyIfSet(&carrier.AuthorityDate, req.AuthorityDate)
	applyIfSet(&carrier.LegalName, req.LegalName)
	applyIfSet(&carrier.DBAName, req.DBAName)
	applyIfSet(&carrier.EIN, req.EIN)
	applyIfSet(&carrier.Address, req.Address)
	applyIfSet(&carrier.City, req.City)
	applyIfSet(&carrier.State, req.State)
	applyIfSet(&carrier.Zip, req.Zip)
	applyIfSet(&carrier.ContactName, req.ContactName)
	applyIfSet(&carrier.ContactPhone, req.ContactPhone)

	if req.EquipmentTypes != nil {
		carrier.EquipmentTypes = datatypes.NewJSONSlice(req.EquipmentTypes)
	}
	if req.PreferredLanes != nil {
		carrier.PreferredLanes = datatypes.NewJSONSlice(req.PreferredLanes)
	}

	// Document slots merge individually; submitting one slot never clears
	// the others
	if len(req.Documents) > 0 {
		docs := carrier.Documents.Data()
		for slot, ref := range req.Documents {
			docs.Set(slot, ref)
		}
		carrier.Documents = datatypes.NewJSONType(docs)
	}

	carrier.UpdatedAt = time.Now()

	if err := s.repo.Carrier().Update(ctx, nil, carrier); err != nil {
		return nil, fmt.Errorf("failed to update carrier: %w", err)
	}

	if req.LegalName != nil {
		s.syncUserCompanyName(ctx, carrier.UserID, carrier.LegalName)
	}

	cache.InvalidateCarrierCache(ctx, s.cacheManager, carrierID)
	s.logger.Info("Carrier profile updated", "carrier_id", carrierID)

	return carrier, nil
}

// ===== SHIPPER =====

func (s *profileService) GetShipper(ctx context.Context, shipperID string) (*models.ShipperProfile, error) {
	var shipper models.ShipperProfile

	err := s.cacheManager.Profile.CacheOrExecute(ctx, "shipper:"+shipperID, &shipper, cache.ProfileCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Shipper().GetByID(ctx, nil, shipperID)
	})
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrShipperNotFound
		}
		return nil, fmt.Errorf("failed to get shipper: %w", err)
	}

	return &shipper, nil
}

func (s *profileService) UpdateShipper(ctx context.Context, shipperID string, req *ShipperUpdateRequest) (*models.ShipperProfile, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	shipper, err := s.repo.Shipper().GetByID(ctx, nil, shipperID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrShipperNotFound
		}
		return nil, fmt.Errorf("failed to get shipper: %w", err)
	}

	applyIfSet(&shipper.LegalName, req.LegalName)
	applyIfSet(&shipper.DBAName, req.DBAName)
	applyIfSet(&shipper.EIN, req.EIN)
	applyIfSet(&shipper.Address, req.Address)
	applyIfSet(&shipper.City, req.City)
	applyIfSet(&shipper.State, req.State)
	applyIfSet(&shipper.Zip, req.Zip)
	applyIfSet(&shipper.ContactName, req.ContactName)
	applyIfSet(&shipper.ContactPhone, req.ContactPhone)
	applyIfSet(&shipper.CommodityType, req.CommodityType)
	applyIfSet(&shipper.MonthlyVolume, req.MonthlyVolume)
	applyIfSet(&shipper.AverageValue, req.AverageValue)

	if req.PreferredEquipment != nil {
		shipper.PreferredEquipment = datatypes.NewJSONSlice(req.PreferredEquipment)
	}

	if len(req.Documents) > 0 {
		docs := shipper.Documents.Data()
		for slot, ref := range req.Documents {
			docs.Set(slot, ref)
		}
		shipper.Documents = datatypes.NewJSONType(docs)
	}

	shipper.UpdatedAt = time.Now()

	if err := s.repo.Shipper().Update(ctx, nil, shipper); err != nil {
		return nil, fmt.Errorf("failed to update shipper: %w", err)
	}

	if req.LegalName != nil {
		s.syncUserCompanyName(ctx, shipper.UserID, shipper.LegalName)
	}

	cache.InvalidateShipperCache(ctx, s.cacheManager, shipperID)
	s.logger.Info("Shipper profile updated", "shipper_id", shipperID)

	return shipper, nil
}

// ===== HELPERS =====

// syncUserCompanyName keeps the denormalized company name on the account
// record in step with the profile's legal name. Best-effort.
func (s *profileService) syncUserCompanyName(ctx context.Context, userID *string, legalName string) {
	if userID == nil {
		return
	}

	user, err := s.repo.User().GetByID(ctx, nil, *userID)
	if err != nil {
		s.logger.Warn("Failed to load user for company name sync", "error", err, "user_id", *userID)
		return
	}

	user.CompanyName = legalName
	if err := s.repo.User().Update(ctx, nil, user); err != nil {
		s.logger.Warn("Failed to sync user company name", "error", err, "user_id", *userID)
	}
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
