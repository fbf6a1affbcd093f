package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/lfl-logistics/onboarding-service/internal/cache"
	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
)

const statsCacheKey = "onboarding"

type adminService struct {
	repo         repositories.Repository
	db           *gorm.DB
	logger       *slog.Logger
	validator    *validator.Validator
	cacheManager *cache.CacheManager
	notifier     NotificationEventService
}

func NewAdminService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, cacheManager *cache.CacheManager, notifier NotificationEventService) AdminService {
	return &adminService{
		repo:         repo,
		db:           db,
		logger:       logger,
		validator:    validator,
		cacheManager: cacheManager,
		notifier:     notifier,
	}
}

// ===== DASHBOARD =====

func (s *adminService) GetDashboardData(ctx context.Context, adminID string, status *models.AccountStatus) (*AdminDashboardData, error) {
	if status != nil && !models.IsValidProfileStatus(*status) {
		return nil, ErrInvalidStatus
	}

	s.logger.Debug("Loading admin dashboard", "admin_id", adminID)

	carriers, _, err := s.repo.Carrier().List(ctx, nil, repositories.CarrierFilters{Status: status})
	if err != nil {
		return nil, fmt.Errorf("failed to list carriers: %w", err)
	}

	shippers, _, err := s.repo.Shipper().List(ctx, nil, repositories.ShipperFilters{Status: status})
	if err != nil {
		return nil, fmt.Errorf("failed to list shippers: %w", err)
	}

	stats, err := s.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	trends, err := s.repo.Dashboard().GetRegistrationTrends(ctx, nil, 30)
	if err != nil {
		return nil, fmt.Errorf("failed to get registration trends: %w", err)
	}

	return &AdminDashboardData{
		Carriers: carriers,
		Shippers: shippers,
		Stats:    stats,
		Trends:   trends,
	}, nil
}

func (s *adminService) GetStats(ctx context.Context) (*repositories.OnboardingStats, error) {
	var stats repositories.OnboardingStats

	err := s.cacheManager.Stats.CacheOrExecute(ctx, statsCacheKey, &stats, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Dashboard().GetOnboardingStats(ctx, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get onboarding stats: %w", err)
	}

	return &stats, nil
}

// ===== STATUS MANAGEMENT =====

func (s *adminService) SetStatus(ctx context.Context, accountType, id string, req *StatusUpdateRequest, adminID string) error {
	s.logger.Info("Setting account status", "account_type", accountType, "id", id, "status", req.Status, "admin_id", adminID)

	if err := s.validator.Validate(req); err != nil {
		return err
	}

	status := models.AccountStatus(req.Status)

	switch accountType {
	case "carrier":
		return s.setCarrierStatus(ctx, id, status)
	case "shipper":
		return s.setShipperStatus(ctx, id, status)
	default:
		return ErrInvalidAccountType
	}
}

func (s *adminService) setCarrierStatus(ctx context.Context, id string, status models.AccountStatus) error {
	carrier, err := s.repo.Carrier().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrCarrierNotFound
		}
		return fmt.Errorf("failed to get carrier: %w", err)
	}

	previous := carrier.Status

	// The profile and its paired user row change status together
	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.Carrier().UpdateStatus(ctx, nil, id, status); err != nil {
			return err
		}
		if carrier.UserID != nil {
			return txRepo.User().UpdateStatus(ctx, nil, *carrier.UserID, status)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update carrier status: %w", err)
	}

	cache.InvalidateCarrierCache(ctx, s.cacheManager, id)

	if err := s.notifier.PublishStatusChanged(ctx, "carrier", id, previous, status); err != nil {
		s.logger.Warn("Status change event publish failed", "error", err, "carrier_id", id)
	}

	return nil
}

func (s *adminService) setShipperStatus(ctx context.Context, id string, status models.AccountStatus) error {
	shipper, err := s.repo.Shipper().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrShipperNotFound
		}
		return fmt.Errorf("failed to get shipper: %w", err)
	}

	previous := shipper.Status

	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.Shipper().UpdateStatus(ctx, nil, id, status); err != nil {
			return err
		}
		if shipper.UserID != nil {
			return txRepo.User().UpdateStatus(ctx, nil, *shipper.UserID, status)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update shipper status: %w", err)
	}

	cache.InvalidateShipperCache(ctx, s.cacheManager, id)

	if err := s.notifier.PublishStatusChanged(ctx, "shipper", id, previous, status); err != nil {
		s.logger.Warn("Status change event publish failed", "error", err, "shipper_id", id)
	}

	return nil
}

// ===== DELETION =====

func (s *adminService) DeleteAccount(ctx context.Context, accountType, id string, adminID string) error {
	s.logger.Info("Deleting account", "account_type", accountType, "id", id, "admin_id", adminID)

	switch accountType {
	case "carrier":
		carrier, err := s.repo.Carrier().GetByID(ctx, nil, id)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return ErrCarrierNotFound
			}
			return fmt.Errorf("failed to get carrier: %w", err)
		}

		err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
			if err := txRepo.Carrier().Delete(ctx, nil, id); err != nil {
				return err
			}
			if carrier.UserID != nil {
				return txRepo.User().Delete(ctx, nil, *carrier.UserID)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to delete carrier: %w", err)
		}

		cache.InvalidateCarrierCache(ctx, s.cacheManager, id)

		userID := ""
		if carrier.UserID != nil {
			userID = *carrier.UserID
		}
		if err := s.notifier.PublishAccountDeleted(ctx, "carrier", id, userID); err != nil {
			s.logger.Warn("Account deleted event publish failed", "error", err, "carrier_id", id)
		}
		return nil

	case "shipper":
		shipper, err := s.repo.Shipper().GetByID(ctx, nil, id)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return ErrShipperNotFound
			}
			return fmt.Errorf("failed to get shipper: %w", err)
		}

		err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
			if err := txRepo.Shipper().Delete(ctx, nil, id); err != nil {
				return err
			}
			if shipper.UserID != nil {
				return txRepo.User().Delete(ctx, nil, *shipper.UserID)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to delete shipper: %w", err)
		}

		cache.InvalidateShipperCache(ctx, s.cacheManager, id)

		userID := ""
		if shipper.UserID != nil {
			userID = *shipper.UserID
		}
		if err := s.notifier.PublishAccountDeleted(ctx, "shipper", id, userID); err != nil {
			s.logger.Warn("Account deleted event publish failed", "error", err, "shipper_id", id)
		}
		return nil

	default:
		return ErrInvalidAccountType
	}
}

// ===== DOCUMENT REVIEW =====

func (s *adminService) GetDocumentReview(ctx context.Context, accountType, id string) (*DocumentReview, error) {
	switch accountType {
	case "carrier":
		carrier, err := s.repo.Carrier().GetByID(ctx, nil, id)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, ErrCarrierNotFound
			}
			return nil, fmt.Errorf("failed to get carrier: %w", err)
		}

		docs := carrier.Documents.Data()
		review := &DocumentReview{
			AccountType: "carrier",
			ProfileID:   carrier.ID,
			LegalName:   carrier.LegalName,
		}
		for _, slot := range models.CarrierDocumentSlots {
			ref := docs.Get(slot)
			review.Slots = append(review.Slots, DocumentSlotStatus{
				Key:    slot,
				Filled: ref != "",
				URL:    ref,
			})
		}
		review.Complete = docs.FilledCount() == len(models.CarrierDocumentSlots)
		return review, nil

	case "shipper":
		shipper, err := s.repo.Shipper().GetByID(ctx, nil, id)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, ErrShipperNotFound
			}
			return nil, fmt.Errorf("failed to get shipper: %w", err)
		}

		docs := shipper.Documents.Data()
		review := &DocumentReview{
			AccountType: "shipper",
			ProfileID:   shipper.ID,
			LegalName:   shipper.LegalName,
		}
		for _, slot := range models.ShipperDocumentSlots {
			ref := docs.Get(slot)
			review.Slots = append(review.Slots, DocumentSlotStatus{
				Key:    slot,
				Filled: ref != "",
				URL:    ref,
			})
		}
		review.Complete = docs.FilledCount() == len(models.ShipperDocumentSlots)
		return review, nil

	default:
		return nil, ErrInvalidAccountType
	}
}
