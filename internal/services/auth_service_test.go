package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lfl-logistics/onboarding-service/internal/events"
	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
)

func newAuthFixture(t *testing.T) (AuthService, RegistrationService) {
	t.Helper()

	repo, db := newTestRepo(t)
	logger := newTestLogger()
	v := validator.New()
	auth := newTestAuth(repo, db)
	notifier := NewNotificationEventService(repo, events.NewMockEventPublisher(logger), logger, v)
	registration := NewRegistrationService(repo, db, logger, v, auth, NewHeuristicAnalyzer(), notifier, newTestCache(t))

	return auth, registration
}

func TestLogin(t *testing.T) {
	auth, registration := newAuthFixture(t)
	ctx := context.Background()

	req := validCarrierRequest()
	result, err := registration.RegisterCarrier(ctx, req)
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		resp, err := auth.Login(ctx, &LoginRequest{
			Email:    req.ContactEmail,
			Password: req.Password,
		})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.Token == "" {
			t.Fatal("expected a token")
		}
		if resp.User.Role != models.RoleCarrier {
			t.Errorf("unexpected role: %s", resp.User.Role)
		}

		claims, err := auth.ValidateToken(ctx, resp.Token)
		if err != nil {
			t.Fatalf("ValidateToken failed: %v", err)
		}
		if claims.Role != models.RoleCarrier {
			t.Errorf("claims role = %s", claims.Role)
		}
		if claims.ProfileID != result.CarrierID {
			t.Errorf("claims profile = %s, want %s", claims.ProfileID, result.CarrierID)
		}
	})

	t.Run("email match is case insensitive", func(t *testing.T) {
		_, err := auth.Login(ctx, &LoginRequest{
			Email:    "Dispatch@CarolinaFreight.example",
			Password: req.Password,
		})
		if err != nil {
			t.Fatalf("Login with different case failed: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(ctx, &LoginRequest{
			Email:    req.ContactEmail,
			Password: "WrongPass123",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email gives the same error as a bad password", func(t *testing.T) {
		_, err := auth.Login(ctx, &LoginRequest{
			Email:    "nobody@example.com",
			Password: "TestPass123",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("missing fields rejected before lookup", func(t *testing.T) {
		_, err := auth.Login(ctx, &LoginRequest{Email: req.ContactEmail})
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected ValidationErrors, got %v", err)
		}
	})
}

func TestValidateToken_Rejections(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		if _, err := auth.ValidateToken(ctx, "not-a-token"); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		repo, db := newTestRepo(t)
		other := NewAuthService(repo, db, newTestLogger(), validator.New(), "other-secret", "onboarding-service", 0)

		registration := func() RegistrationService {
			logger := newTestLogger()
			v := validator.New()
			notifier := NewNotificationEventService(repo, events.NewMockEventPublisher(logger), logger, v)
			return NewRegistrationService(repo, db, logger, v, other, NewHeuristicAnalyzer(), notifier, newTestCache(t))
		}()
		req := validCarrierRequest()
		if _, err := registration.RegisterCarrier(ctx, req); err != nil {
			t.Fatalf("registration failed: %v", err)
		}
		resp, err := other.Login(ctx, &LoginRequest{Email: req.ContactEmail, Password: req.Password})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		if _, err := auth.ValidateToken(ctx, resp.Token); err == nil {
			t.Fatal("expected rejection of foreign signature")
		}
	})
}

func TestHashPassword(t *testing.T) {
	auth, _ := newAuthFixture(t)

	hash, err := auth.HashPassword("TestPass123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "TestPass123" {
		t.Error("hash equals the input")
	}

	again, err := auth.HashPassword("TestPass123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == again {
		t.Error("expected salted hashes to differ")
	}
}
