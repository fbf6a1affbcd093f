package services

import (
	"context"
	"testing"

	"github.com/lfl-logistics/onboarding-service/internal/events"
	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
)

func TestNotificationEventService_PublishEvents(t *testing.T) {
	// Setup
	logger := newTestLogger()
	mockPublisher := events.NewMockEventPublisher(logger)
	v := validator.New()

	// Create service - using the service directly
	service := &notificationEventService{
		repo:           nil,
		eventPublisher: mockPublisher,
		logger:         logger,
		validator:      v,
	}

	ctx := context.Background()

	t.Run("NotifyAdminNewApplication", func(t *testing.T) {
		mockPublisher.ClearEvents()

		err := service.NotifyAdminNewApplication(ctx, "carrier", "carrier-1", "Carolina Freight LLC", "dispatch@carolinafreight.example")
		if err != nil {
			t.Fatalf("Failed to notify admin: %v", err)
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(published))
		}

		event := published[0]
		if event.Type != events.EventAdminNotification {
			t.Errorf("Expected %s, got %s", events.EventAdminNotification, event.Type)
		}
		if event.Data["legalName"] != "Carolina Freight LLC" {
			t.Errorf("Unexpected legal name: %v", event.Data["legalName"])
		}
		if event.ID == "" {
			t.Error("Expected event ID")
		}
		if event.Source != "onboarding-service" {
			t.Errorf("Unexpected source: %s", event.Source)
		}
	})

	t.Run("PublishRegistered picks the event type by account type", func(t *testing.T) {
		mockPublisher.ClearEvents()

		if err := service.PublishRegistered(ctx, "carrier", "carrier-1", "user-1"); err != nil {
			t.Fatalf("Failed to publish carrier registration: %v", err)
		}
		if err := service.PublishRegistered(ctx, "shipper", "shipper-1", "user-2"); err != nil {
			t.Fatalf("Failed to publish shipper registration: %v", err)
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 2 {
			t.Fatalf("Expected 2 events, got %d", len(published))
		}
		if published[0].Type != events.EventCarrierRegistered {
			t.Errorf("Expected %s, got %s", events.EventCarrierRegistered, published[0].Type)
		}
		if published[1].Type != events.EventShipperRegistered {
			t.Errorf("Expected %s, got %s", events.EventShipperRegistered, published[1].Type)
		}
	})

	t.Run("PublishStatusChanged", func(t *testing.T) {
		mockPublisher.ClearEvents()

		err := service.PublishStatusChanged(ctx, "carrier", "carrier-1", models.StatusPending, models.StatusApproved)
		if err != nil {
			t.Fatalf("Failed to publish status change: %v", err)
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(published))
		}
		event := published[0]
		if event.Type != events.EventStatusChanged {
			t.Errorf("Expected %s, got %s", events.EventStatusChanged, event.Type)
		}
		if event.Data["from"] != "pending" || event.Data["to"] != "approved" {
			t.Errorf("Unexpected transition data: %v", event.Data)
		}
	})

	t.Run("PublishAccountDeleted", func(t *testing.T) {
		mockPublisher.ClearEvents()

		err := service.PublishAccountDeleted(ctx, "shipper", "shipper-1", "user-2")
		if err != nil {
			t.Fatalf("Failed to publish account deletion: %v", err)
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(published))
		}
		if published[0].Data["profileId"] != "shipper-1" {
			t.Errorf("Unexpected profile ID: %v", published[0].Data["profileId"])
		}
	})

	t.Run("PublishStepAdvanced", func(t *testing.T) {
		mockPublisher.ClearEvents()

		err := service.PublishStepAdvanced(ctx, "session-1", models.RoleCarrier, "verification", "company_profile")
		if err != nil {
			t.Fatalf("Failed to publish step advance: %v", err)
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(published))
		}
		event := published[0]
		if event.Type != events.EventOnboardingAdvanced {
			t.Errorf("Expected %s, got %s", events.EventOnboardingAdvanced, event.Type)
		}
		if event.Data["from"] != "verification" || event.Data["to"] != "company_profile" {
			t.Errorf("Unexpected transition data: %v", event.Data)
		}
	})
}
