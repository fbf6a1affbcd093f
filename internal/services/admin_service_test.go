package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lfl-logistics/onboarding-service/internal/events"
	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
)

type adminFixture struct {
	admin        AdminService
	registration RegistrationService
	repo         repositories.Repository
	publisher    *events.MockEventPublisher
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	repo, db := newTestRepo(t)
	logger := newTestLogger()
	v := validator.New()
	auth := newTestAuth(repo, db)
	publisher := events.NewMockEventPublisher(logger)
	notifier := NewNotificationEventService(repo, publisher, logger, v)
	cacheManager := newTestCache(t)

	return &adminFixture{
		admin:        NewAdminService(repo, db, logger, v, cacheManager, notifier),
		registration: NewRegistrationService(repo, db, logger, v, auth, NewHeuristicAnalyzer(), notifier, cacheManager),
		repo:         repo,
		publisher:    publisher,
	}
}

func (f *adminFixture) registerCarrier(t *testing.T, ctx context.Context) string {
	t.Helper()
	result, err := f.registration.RegisterCarrier(ctx, validCarrierRequest())
	if err != nil {
		t.Fatalf("carrier registration failed: %v", err)
	}
	return result.CarrierID
}

func (f *adminFixture) registerShipper(t *testing.T, ctx context.Context) string {
	t.Helper()
	result, err := f.registration.RegisterShipper(ctx, validShipperRequest())
	if err != nil {
		t.Fatalf("shipper registration failed: %v", err)
	}
	return result.ShipperID
}

func TestSetStatus_SyncsUserAccount(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	carrierID := f.registerCarrier(t, ctx)

	err := f.admin.SetStatus(ctx, "carrier", carrierID, &StatusUpdateRequest{Status: "approved"}, "admin-1")
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	carrier, err := f.repo.Carrier().GetByID(ctx, nil, carrierID)
	if err != nil {
		t.Fatalf("failed to load carrier: %v", err)
	}
	if carrier.Status != models.StatusApproved {
		t.Errorf("expected approved carrier, got %s", carrier.Status)
	}

	user, err := f.repo.User().GetByID(ctx, nil, *carrier.UserID)
	if err != nil {
		t.Fatalf("failed to load user: %v", err)
	}
	if user.Status != models.StatusApproved {
		t.Errorf("user status not synced, got %s", user.Status)
	}
}

func TestSetStatus_Validation(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	carrierID := f.registerCarrier(t, ctx)

	t.Run("rejects unknown status", func(t *testing.T) {
		err := f.admin.SetStatus(ctx, "carrier", carrierID, &StatusUpdateRequest{Status: "banned"}, "admin-1")
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected ValidationErrors, got %v", err)
		}
	})

	t.Run("rejects unknown account type", func(t *testing.T) {
		err := f.admin.SetStatus(ctx, "broker", carrierID, &StatusUpdateRequest{Status: "approved"}, "admin-1")
		if !errors.Is(err, ErrInvalidAccountType) {
			t.Fatalf("expected ErrInvalidAccountType, got %v", err)
		}
	})

	t.Run("missing carrier", func(t *testing.T) {
		err := f.admin.SetStatus(ctx, "carrier", "no-such-id", &StatusUpdateRequest{Status: "approved"}, "admin-1")
		if !errors.Is(err, ErrCarrierNotFound) {
			t.Fatalf("expected ErrCarrierNotFound, got %v", err)
		}
	})
}

func TestDeleteAccount_Cascades(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	shipperID := f.registerShipper(t, ctx)

	shipper, err := f.repo.Shipper().GetByID(ctx, nil, shipperID)
	if err != nil {
		t.Fatalf("failed to load shipper: %v", err)
	}
	userID := *shipper.UserID

	if err := f.admin.DeleteAccount(ctx, "shipper", shipperID, "admin-1"); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}

	if _, err := f.repo.Shipper().GetByID(ctx, nil, shipperID); !repositories.IsNotFoundError(err) {
		t.Errorf("expected shipper gone, got %v", err)
	}
	if _, err := f.repo.User().GetByID(ctx, nil, userID); !repositories.IsNotFoundError(err) {
		t.Errorf("expected paired user gone, got %v", err)
	}
}

func TestGetStats(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	carrierID := f.registerCarrier(t, ctx)
	f.registerShipper(t, ctx)

	if err := f.admin.SetStatus(ctx, "carrier", carrierID, &StatusUpdateRequest{Status: "approved"}, "admin-1"); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	stats, err := f.admin.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.TotalCarriers != 1 {
		t.Errorf("totalCarriers = %d, want 1", stats.TotalCarriers)
	}
	if stats.ApprovedCarriers != 1 {
		t.Errorf("approvedCarriers = %d, want 1", stats.ApprovedCarriers)
	}
	if stats.PendingCarriers != 0 {
		t.Errorf("pendingCarriers = %d, want 0", stats.PendingCarriers)
	}
	if stats.TotalShippers != 1 {
		t.Errorf("totalShippers = %d, want 1", stats.TotalShippers)
	}
	if stats.PendingShippers != 1 {
		t.Errorf("pendingShippers = %d, want 1", stats.PendingShippers)
	}
}

func TestGetDashboardData(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	carrierID := f.registerCarrier(t, ctx)
	f.registerShipper(t, ctx)

	data, err := f.admin.GetDashboardData(ctx, "admin-1", nil)
	if err != nil {
		t.Fatalf("GetDashboardData failed: %v", err)
	}

	if len(data.Carriers) != 1 {
		t.Errorf("expected 1 carrier, got %d", len(data.Carriers))
	}
	if len(data.Shippers) != 1 {
		t.Errorf("expected 1 shipper, got %d", len(data.Shippers))
	}
	if data.Stats == nil {
		t.Fatal("expected stats")
	}

	if len(data.Trends) != 30 {
		t.Fatalf("expected 30 trend buckets, got %d", len(data.Trends))
	}
	today := data.Trends[len(data.Trends)-1]
	if today.Carriers != 1 || today.Shippers != 1 {
		t.Errorf("expected today's bucket to count 1 carrier and 1 shipper, got %d/%d", today.Carriers, today.Shippers)
	}

	t.Run("status filter narrows both lists", func(t *testing.T) {
		if err := f.admin.SetStatus(ctx, "carrier", carrierID, &StatusUpdateRequest{Status: "approved"}, "admin-1"); err != nil {
			t.Fatalf("SetStatus failed: %v", err)
		}

		pending := models.StatusPending
		filtered, err := f.admin.GetDashboardData(ctx, "admin-1", &pending)
		if err != nil {
			t.Fatalf("filtered GetDashboardData failed: %v", err)
		}
		if len(filtered.Carriers) != 0 {
			t.Errorf("expected no pending carriers after approval, got %d", len(filtered.Carriers))
		}
		if len(filtered.Shippers) != 1 {
			t.Errorf("expected 1 pending shipper, got %d", len(filtered.Shippers))
		}
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		bogus := models.AccountStatus("archived")
		_, err := f.admin.GetDashboardData(ctx, "admin-1", &bogus)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestGetDocumentReview(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	req := validCarrierRequest()
	req.Documents = map[string]string{
		"w9":  "data:application/pdf;base64,dGVzdA==",
		"coi": "data:application/pdf;base64,dGVzdA==",
	}
	result, err := f.registration.RegisterCarrier(ctx, req)
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	review, err := f.admin.GetDocumentReview(ctx, "carrier", result.CarrierID)
	if err != nil {
		t.Fatalf("GetDocumentReview failed: %v", err)
	}

	if review.Complete {
		t.Error("expected incomplete review with mcAuthority empty")
	}
	if len(review.Slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(review.Slots))
	}

	filled := map[string]bool{}
	for _, slot := range review.Slots {
		filled[slot.Key] = slot.Filled
	}
	if !filled["w9"] || !filled["coi"] {
		t.Error("expected w9 and coi filled")
	}
	if filled["mcAuthority"] {
		t.Error("expected mcAuthority empty")
	}
}
