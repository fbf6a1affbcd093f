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

func newRegistrationFixture(t *testing.T) (RegistrationService, repositories.Repository, *events.MockEventPublisher) {
	t.Helper()

	repo, db := newTestRepo(t)
	logger := newTestLogger()
	v := validator.New()
	auth := newTestAuth(repo, db)
	publisher := events.NewMockEventPublisher(logger)
	notifier := NewNotificationEventService(repo, publisher, logger, v)

	svc := NewRegistrationService(repo, db, logger, v, auth, NewHeuristicAnalyzer(), notifier, newTestCache(t))
	return svc, repo, publisher
}

func TestRegisterCarrier_Success(t *testing.T) {
	svc, repo, publisher := newRegistrationFixture(t)
	ctx := context.Background()

	result, err := svc.RegisterCarrier(ctx, validCarrierRequest())
	if err != nil {
		t.Fatalf("RegisterCarrier failed: %v", err)
	}

	if !result.Success {
		t.Error("expected success result")
	}
	if result.CarrierID == "" {
		t.Fatal("expected carrier ID in result")
	}
	if result.Message != "Registration successful! Your application is pending admin approval." {
		t.Errorf("unexpected message: %q", result.Message)
	}

	profile, err := repo.Carrier().GetByID(ctx, nil, result.CarrierID)
	if err != nil {
		t.Fatalf("failed to load carrier: %v", err)
	}
	if profile.Status != models.StatusPending {
		t.Errorf("expected pending status, got %s", profile.Status)
	}
	if profile.DOTNumber != "1234567" {
		t.Errorf("unexpected DOT number: %s", profile.DOTNumber)
	}
	if profile.UserID == nil {
		t.Fatal("expected profile to reference its user")
	}

	user, err := repo.User().GetByID(ctx, nil, *profile.UserID)
	if err != nil {
		t.Fatalf("failed to load user: %v", err)
	}
	if user.Role != models.RoleCarrier {
		t.Errorf("expected carrier role, got %s", user.Role)
	}
	if user.Status != models.StatusPending {
		t.Errorf("expected pending user, got %s", user.Status)
	}
	if user.CarrierID == nil || *user.CarrierID != profile.ID {
		t.Error("user does not reference the carrier profile")
	}
	if user.PasswordHash == "TestPass123" {
		t.Error("password stored in plain text")
	}

	// Admin notification plus registered event
	if got := len(publisher.GetPublishedEvents()); got != 2 {
		t.Errorf("expected 2 events, got %d", got)
	}
}

func TestRegisterCarrier_MissingFields(t *testing.T) {
	svc, _, _ := newRegistrationFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*CarrierOnboardRequest)
		missing []string
	}{
		{
			name:    "missing dot number",
			mutate:  func(r *CarrierOnboardRequest) { r.DOTNumber = "" },
			missing: []string{"DOT Number"},
		},
		{
			name:    "whitespace only counts as missing",
			mutate:  func(r *CarrierOnboardRequest) { r.MCNumber = "   " },
			missing: []string{"MC Number"},
		},
		{
			name: "all missing fields reported together",
			mutate: func(r *CarrierOnboardRequest) {
				r.DOTNumber = ""
				r.ContactEmail = ""
				r.Password = ""
			},
			missing: []string{"DOT Number", "Contact Email", "Password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCarrierRequest()
			tt.mutate(req)

			_, err := svc.RegisterCarrier(ctx, req)

			var missingErr *MissingFieldsError
			if !errors.As(err, &missingErr) {
				t.Fatalf("expected MissingFieldsError, got %v", err)
			}
			if len(missingErr.Fields) != len(tt.missing) {
				t.Fatalf("expected %d missing fields, got %v", len(tt.missing), missingErr.Fields)
			}
			for i, want := range tt.missing {
				if missingErr.Fields[i] != want {
					t.Errorf("field %d: expected %q, got %q", i, want, missingErr.Fields[i])
				}
			}
		})
	}
}

func TestRegisterCarrier_InvalidCredentials(t *testing.T) {
	svc, repo, _ := newRegistrationFixture(t)
	ctx := context.Background()

	t.Run("bad email format", func(t *testing.T) {
		req := validCarrierRequest()
		req.ContactEmail = "not-an-email"

		_, err := svc.RegisterCarrier(ctx, req)

		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected ValidationErrors, got %v", err)
		}
		if verrs[0].Field != "contactEmail" {
			t.Errorf("expected contactEmail failure, got %s", verrs[0].Field)
		}
	})

	t.Run("short password leaves no rows behind", func(t *testing.T) {
		req := validCarrierRequest()
		req.Password = "abc"

		_, err := svc.RegisterCarrier(ctx, req)

		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected ValidationErrors, got %v", err)
		}

		exists, err := repo.User().ExistsByEmail(ctx, nil, req.ContactEmail)
		if err != nil {
			t.Fatalf("ExistsByEmail failed: %v", err)
		}
		if exists {
			t.Error("rejected registration persisted a user")
		}
	})
}

func TestRegisterCarrier_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newRegistrationFixture(t)
	ctx := context.Background()

	first, err := svc.RegisterCarrier(ctx, validCarrierRequest())
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	second := validCarrierRequest()
	second.LegalName = "Different Carrier LLC"
	second.DOTNumber = "7654321"

	_, err = svc.RegisterCarrier(ctx, second)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}

	// The first registration is untouched
	profile, err := repo.Carrier().GetByID(ctx, nil, first.CarrierID)
	if err != nil {
		t.Fatalf("first carrier lost: %v", err)
	}
	if profile.LegalName != "Carolina Freight LLC" {
		t.Errorf("first registration mutated: %s", profile.LegalName)
	}
}

func TestRegisterCarrier_DuplicateDOTNumber(t *testing.T) {
	svc, _, _ := newRegistrationFixture(t)
	ctx := context.Background()

	if _, err := svc.RegisterCarrier(ctx, validCarrierRequest()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	second := validCarrierRequest()
	second.LegalName = "Different Carrier LLC"
	second.ContactEmail = "other@carolinafreight.example"

	_, err := svc.RegisterCarrier(ctx, second)
	if !errors.Is(err, ErrDOTAlreadyRegistered) {
		t.Fatalf("expected ErrDOTAlreadyRegistered, got %v", err)
	}
}

func TestRegisterShipper_Success(t *testing.T) {
	svc, repo, _ := newRegistrationFixture(t)
	ctx := context.Background()

	result, err := svc.RegisterShipper(ctx, validShipperRequest())
	if err != nil {
		t.Fatalf("RegisterShipper failed: %v", err)
	}
	if result.ShipperID == "" {
		t.Fatal("expected shipper ID in result")
	}

	profile, err := repo.Shipper().GetByID(ctx, nil, result.ShipperID)
	if err != nil {
		t.Fatalf("failed to load shipper: %v", err)
	}
	if profile.Status != models.StatusPending {
		t.Errorf("expected pending status, got %s", profile.Status)
	}
	if profile.UserID == nil {
		t.Fatal("expected profile to reference its user")
	}

	user, err := repo.User().GetByID(ctx, nil, *profile.UserID)
	if err != nil {
		t.Fatalf("failed to load user: %v", err)
	}
	if user.Role != models.RoleShipper {
		t.Errorf("expected shipper role, got %s", user.Role)
	}
}

func TestRegisterShipper_MissingFields(t *testing.T) {
	svc, _, _ := newRegistrationFixture(t)
	ctx := context.Background()

	req := validShipperRequest()
	req.LegalName = ""
	req.ContactPhone = ""

	_, err := svc.RegisterShipper(ctx, req)

	var missingErr *MissingFieldsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	want := []string{"Legal Company Name", "Contact Phone"}
	if len(missingErr.Fields) != len(want) {
		t.Fatalf("expected %v, got %v", want, missingErr.Fields)
	}
	for i := range want {
		if missingErr.Fields[i] != want[i] {
			t.Errorf("field %d: expected %q, got %q", i, want[i], missingErr.Fields[i])
		}
	}
}

func TestRegisterShipper_EmailSharedWithCarrier(t *testing.T) {
	svc, _, _ := newRegistrationFixture(t)
	ctx := context.Background()

	carrier := validCarrierRequest()
	if _, err := svc.RegisterCarrier(ctx, carrier); err != nil {
		t.Fatalf("carrier registration failed: %v", err)
	}

	shipper := validShipperRequest()
	shipper.ContactEmail = carrier.ContactEmail

	_, err := svc.RegisterShipper(ctx, shipper)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered across account types, got %v", err)
	}
}
