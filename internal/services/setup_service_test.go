package services

import (
	"context"
	"testing"

	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
)

func TestSeedDefaults(t *testing.T) {
	repo, db := newTestRepo(t)
	auth := newTestAuth(repo, db)
	svc := NewSetupService(repo, db, newTestLogger(), auth)
	ctx := context.Background()

	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}

	admin, err := repo.User().GetByEmail(ctx, nil, "admin@lfllogistics.com")
	if err != nil {
		t.Fatalf("admin account missing: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Errorf("expected admin role, got %s", admin.Role)
	}
	if admin.Status != models.StatusActive {
		t.Errorf("expected active admin, got %s", admin.Status)
	}

	carrier, err := repo.User().GetByEmail(ctx, nil, "testcarrier@example.com")
	if err != nil {
		t.Fatalf("test carrier missing: %v", err)
	}
	if carrier.CarrierID == nil {
		t.Fatal("test carrier has no profile reference")
	}
	profile, err := repo.Carrier().GetByID(ctx, nil, *carrier.CarrierID)
	if err != nil {
		t.Fatalf("carrier profile missing: %v", err)
	}
	if profile.Status != models.StatusApproved {
		t.Errorf("expected approved seed carrier, got %s", profile.Status)
	}
	if profile.DOTNumber != "1234567" {
		t.Errorf("unexpected seed DOT number: %s", profile.DOTNumber)
	}

	shipper, err := repo.User().GetByEmail(ctx, nil, "testshipper@example.com")
	if err != nil {
		t.Fatalf("test shipper missing: %v", err)
	}
	if shipper.ShipperID == nil {
		t.Fatal("test shipper has no profile reference")
	}

	// Seeding twice must not duplicate or fail
	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("second SeedDefaults failed: %v", err)
	}

	_, total, err := repo.User().List(ctx, nil, repositories.UserFilters{})
	if err != nil {
		t.Fatalf("failed to list users: %v", err)
	}
	if total != 3 {
		t.Errorf("expected 3 users after reseed, got %d", total)
	}
}
