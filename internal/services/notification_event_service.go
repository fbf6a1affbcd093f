package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lfl-logistics/onboarding-service/internal/events"
	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
)

// notificationEventService publishes domain events to the broker. Callers
// treat every publish as best-effort: a failed publish is logged upstream
// and never fails a user-facing request.
type notificationEventService struct {
	repo           repositories.Repository
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	validator      *validator.Validator
}

func NewNotificationEventService(repo repositories.Repository, eventPublisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) NotificationEventService {
	return &notificationEventService{
		repo:           repo,
		eventPublisher: eventPublisher,
		logger:         logger,
		validator:      validator,
	}
}

func (s *notificationEventService) NotifyAdminNewApplication(ctx context.Context, accountType, profileID, legalName, contactEmail string) error {
	event := events.NewEvent(events.EventAdminNotification, map[string]interface{}{
		"accountType":  accountType,
		"profileId":    profileID,
		"legalName":    legalName,
		"contactEmail": contactEmail,
	})

	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish admin notification: %w", err)
	}

	s.logger.Info("Admin notified of new application", "account_type", accountType, "profile_id", profileID)
	return nil
}

func (s *notificationEventService) PublishRegistered(ctx context.Context, accountType, profileID, userID string) error {
	eventType := events.EventCarrierRegistered
	if accountType == "shipper" {
		eventType = events.EventShipperRegistered
	}

	event := events.NewEvent(eventType, map[string]interface{}{
		"accountType": accountType,
		"profileId":   profileID,
		"userId":      userID,
	})

	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish registration event: %w", err)
	}

	return nil
}

func (s *notificationEventService) PublishStatusChanged(ctx context.Context, accountType, profileID string, from, to models.AccountStatus) error {
	event := events.NewEvent(events.EventStatusChanged, map[string]interface{}{
		"accountType": accountType,
		"profileId":   profileID,
		"from":        string(from),
		"to":          string(to),
	})

	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish status change event: %w", err)
	}

	return nil
}

func (s *notificationEventService) PublishStepAdvanced(ctx context.Context, sessionID string, role models.UserRole, from, to string) error {
	event := events.NewEvent(events.EventOnboardingAdvanced, map[string]interface{}{
		"sessionId": sessionID,
		"role":      string(role),
		"from":      from,
		"to":        to,
	})

	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish step advanced event: %w", err)
	}

	return nil
}

func (s *notificationEventService) PublishAccountDeleted(ctx context.Context, accountType, profileID, userID string) error {
	event := events.NewEvent(events.EventAccountDeleted, map[string]interface{}{
		"accountType": accountType,
		"profileId":   profileID,
		"userId":      userID,
	})

	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish account deleted event: %w", err)
	}

	return nil
}
