package services

import (
	"context"
	"testing"
	"time"

	"github.com/lfl-logistics/onboarding-service/internal/events"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
)

func newManagerFixture(t *testing.T, cfg *ServiceManagerConfig) ServiceManager {
	t.Helper()

	repo, db := newTestRepo(t)
	logger := newTestLogger()
	v := validator.New()
	publisher := events.NewMockEventPublisher(logger)
	cacheManager := newTestCache(t)

	if cfg == nil {
		return NewDefaultServiceManager(db, repo, logger, v, publisher, cacheManager)
	}
	return NewServiceManager(db, repo, logger, v, publisher, cacheManager, *cfg)
}

func TestServiceManagerLifecycle(t *testing.T) {
	sm := newManagerFixture(t, nil)
	ctx := context.Background()

	if err := sm.HealthCheck(ctx); err == nil {
		t.Fatal("expected health check to fail before Initialize")
	}

	if err := sm.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	// Initialize is idempotent
	if err := sm.Initialize(ctx); err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}

	if sm.Auth() == nil || sm.Registration() == nil || sm.Onboarding() == nil ||
		sm.Admin() == nil || sm.Profile() == nil || sm.Upload() == nil ||
		sm.Export() == nil || sm.Setup() == nil || sm.NotificationEvent() == nil {
		t.Fatal("expected all services to be wired after Initialize")
	}

	if err := sm.HealthCheck(ctx); err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}

	if err := sm.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if err := sm.Shutdown(ctx); err != nil {
		t.Fatalf("second Shutdown failed: %v", err)
	}
	if err := sm.HealthCheck(ctx); err == nil {
		t.Fatal("expected health check to fail after Shutdown")
	}
}

func TestServiceManagerSeedsOnStartup(t *testing.T) {
	sm := newManagerFixture(t, &ServiceManagerConfig{
		JWTSecret:      "test-secret",
		JWTIssuer:      "onboarding-service",
		TokenTTL:       time.Hour,
		DefaultTimeout: 30 * time.Second,
		SeedOnStartup:  true,
	})
	ctx := context.Background()

	if err := sm.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// Seeded admin can log in
	resp, err := sm.Auth().Login(ctx, &LoginRequest{
		Email:    "admin@lfllogistics.com",
		Password: "TestPass123",
	})
	if err != nil {
		t.Fatalf("seeded admin login failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a session token for the seeded admin")
	}
}
