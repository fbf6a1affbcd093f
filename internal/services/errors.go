package services

import (
	"errors"
	"fmt"
	"strings"
)

// ===== SENTINEL ERRORS =====

var (
	// Account errors
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrDOTAlreadyRegistered   = errors.New("DOT number already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")

	// Profile errors
	ErrCarrierNotFound = errors.New("carrier not found")
	ErrShipperNotFound = errors.New("shipper not found")

	// Onboarding errors
	ErrSessionNotFound       = errors.New("onboarding session not found")
	ErrInvalidStepTransition = errors.New("invalid onboarding step transition")
	ErrOnboardingComplete    = errors.New("onboarding already complete")

	// Admin errors
	ErrInvalidStatus      = errors.New("invalid account status")
	ErrInvalidAccountType = errors.New("invalid account type")

	// Upload errors
	ErrFileTooLarge        = errors.New("file exceeds maximum size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// ===== STRUCTURED ERRORS =====

// MissingFieldsError lists every required registration field absent from a
// submission, not just the first one found.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

// BusinessRuleError represents a domain rule violation
type BusinessRuleError struct {
	Message string
	Rule    string
	Context map[string]interface{}
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

func NewBusinessRuleError(message, rule string) *BusinessRuleError {
	return &BusinessRuleError{
		Message: message,
		Rule:    rule,
		Context: make(map[string]interface{}),
	}
}

// PermissionError represents an authorization failure
type PermissionError struct {
	UserID   string
	Resource string
	ID       string
	Action   string
	Reason   string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("user %s cannot %s %s %s: %s", e.UserID, e.Action, e.Resource, e.ID, e.Reason)
}

func NewPermissionError(userID, id, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:   userID,
		Resource: resource,
		ID:       id,
		Action:   action,
		Reason:   reason,
	}
}
