package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lfl-logistics/onboarding-service/internal/cache"
	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
)

// stepTransition is one row of the wizard transition table.
type stepTransition struct {
	next string
	prev string
}

// Transition tables per role. Any move not listed here is rejected.
// Complete has no row: it is terminal.
var carrierTransitions = map[string]stepTransition{
	StepVerification:   {next: StepCompanyProfile},
	StepCompanyProfile: {next: StepOperations, prev: StepVerification},
	StepOperations:     {next: StepDocumentation, prev: StepCompanyProfile},
	StepDocumentation:  {next: StepAgreement, prev: StepOperations},
	StepAgreement:      {next: StepComplete, prev: StepDocumentation},
}

var shipperTransitions = map[string]stepTransition{
	StepCompanyProfile: {next: StepOperations},
	StepOperations:     {next: StepDocumentation, prev: StepCompanyProfile},
	StepDocumentation:  {next: StepAgreement, prev: StepOperations},
	StepAgreement:      {next: StepComplete, prev: StepDocumentation},
}

type onboardingService struct {
	logger       *slog.Logger
	validator    *validator.Validator
	registration RegistrationService
	cacheManager *cache.CacheManager
	notifier     NotificationEventService
	draftTTL     time.Duration
}

func NewOnboardingService(logger *slog.Logger, validator *validator.Validator, registration RegistrationService, cacheManager *cache.CacheManager, notifier NotificationEventService) OnboardingService {
	return &onboardingService{
		logger:       logger,
		validator:    validator,
		registration: registration,
		cacheManager: cacheManager,
		notifier:     notifier,
		draftTTL:     cache.DraftCacheConfig.TTL,
	}
}

// ===== SESSION LIFECYCLE =====

func (s *onboardingService) StartSession(ctx context.Context, req *StartOnboardingRequest) (*OnboardingSession, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	role := models.UserRole(req.Role)

	now := time.Now()
	session := &OnboardingSession{
		ID:             uuid.New().String(),
		Role:           role,
		CurrentStep:    firstStep(role),
		CompletedSteps: []string{},
		Fields:         make(map[string]interface{}),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Onboarding session started", "session_id", session.ID, "role", role)

	return session, nil
}

func (s *onboardingService) GetSession(ctx context.Context, sessionID string) (*OnboardingSession, error) {
	var session OnboardingSession

	err := s.cacheManager.Draft.Get(ctx, sessionID, &session)
	if err != nil {
		if err == cache.ErrCacheNotFound {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load onboarding session: %w", err)
	}

	// Reading a draft slides its expiry so active sessions stay alive
	if err := s.cacheManager.Draft.Expire(ctx, sessionID, s.draftTTL); err != nil {
		s.logger.Warn("Failed to refresh draft TTL", "error", err, "session_id", sessionID)
	}

	return &session, nil
}

// ===== STEP TRANSITIONS =====

func (s *onboardingService) AdvanceStep(ctx context.Context, sessionID string, req *AdvanceStepRequest) (*OnboardingSession, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fromStep := session.CurrentStep

	// Complete is terminal in both directions
	if session.CurrentStep == StepComplete {
		return nil, ErrOnboardingComplete
	}

	transitions := transitionsFor(session.Role)
	transition, ok := transitions[session.CurrentStep]
	if !ok {
		return nil, ErrInvalidStepTransition
	}

	switch req.Direction {
	case "back":
		if transition.prev == "" {
			return nil, ErrInvalidStepTransition
		}
		session.CurrentStep = transition.prev

	case "next":
		// Field values accumulate across steps
		for key, value := range req.Fields {
			session.Fields[key] = value
		}

		if transition.next == StepComplete {
			// Leaving Agreement submits the registration exactly once. On
			// failure the session stays at Agreement.
			result, err := s.submitRegistration(ctx, session)
			if err != nil {
				if saveErr := s.saveSession(ctx, session); saveErr != nil {
					s.logger.Error("Failed to save session after registration failure", "error", saveErr, "session_id", session.ID)
				}
				return nil, err
			}
			session.Result = result
		}

		session.CompletedSteps = append(session.CompletedSteps, session.CurrentStep)
		session.CurrentStep = transition.next

	default:
		return nil, ErrInvalidStepTransition
	}

	session.UpdatedAt = time.Now()
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	if err := s.notifier.PublishStepAdvanced(ctx, session.ID, session.Role, fromStep, session.CurrentStep); err != nil {
		s.logger.Warn("Step advanced event publish failed", "error", err, "session_id", session.ID)
	}

	return session, nil
}

func (s *onboardingService) submitRegistration(ctx context.Context, session *OnboardingSession) (*RegistrationResult, error) {
	payload, err := json.Marshal(session.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft fields: %w", err)
	}

	switch session.Role {
	case models.RoleCarrier:
		var req CarrierOnboardRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, fmt.Errorf("failed to decode carrier draft: %w", err)
		}
		return s.registration.RegisterCarrier(ctx, &req)

	case models.RoleShipper:
		var req ShipperOnboardRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, fmt.Errorf("failed to decode shipper draft: %w", err)
		}
		return s.registration.RegisterShipper(ctx, &req)
	}

	return nil, ErrInvalidAccountType
}

// ===== HELPERS =====

func (s *onboardingService) saveSession(ctx context.Context, session *OnboardingSession) error {
	if err := s.cacheManager.Draft.Set(ctx, session.ID, session, s.draftTTL); err != nil {
		return fmt.Errorf("failed to save onboarding session: %w", err)
	}
	return nil
}

func firstStep(role models.UserRole) string {
	if role == models.RoleShipper {
		return StepCompanyProfile
	}
	return StepVerification
}

func transitionsFor(role models.UserRole) map[string]stepTransition {
	if role == models.RoleShipper {
		return shipperTransitions
	}
	return carrierTransitions
}
