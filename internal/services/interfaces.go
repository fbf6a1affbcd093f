package services

import (
	"context"
	"time"

	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type CarrierOnboardRequest = validator.CarrierOnboardRequest
type ShipperOnboardRequest = validator.ShipperOnboardRequest
type LoginRequest = validator.LoginRequest
type CarrierUpdateRequest = validator.CarrierUpdateRequest
type ShipperUpdateRequest = validator.ShipperUpdateRequest
type StatusUpdateRequest = validator.StatusUpdateRequest
type StartOnboardingRequest = validator.StartOnboardingRequest
type AdvanceStepRequest = validator.AdvanceStepRequest

// ===== AUTH RELATED DTOs =====

// TokenClaims are the verified claims carried by a session token
type TokenClaims struct {
	UserID    string          `json:"userId"`
	Role      models.UserRole `json:"role"`
	ProfileID string          `json:"profileId"`
}

type UserInfo struct {
	ID          string               `json:"id"`
	Email       string               `json:"email"`
	Name        string               `json:"name"`
	CompanyName string               `json:"companyName"`
	Role        models.UserRole      `json:"role"`
	Status      models.AccountStatus `json:"status"`
	CarrierID   *string              `json:"carrierId,omitempty"`
	ShipperID   *string              `json:"shipperId,omitempty"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *UserInfo `json:"user"`
}

// ===== REGISTRATION RELATED DTOs =====

// RegistrationResult is returned to the applicant after a successful
// registration.
type RegistrationResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	CarrierID string `json:"carrierId,omitempty"`
	ShipperID string `json:"shipperId,omitempty"`
}

// ===== ONBOARDING WIZARD DTOs =====

// Wizard step names. Carriers walk all of them in order; shippers have no
// authority to verify and start at company_profile.
const (
	StepVerification   = "verification"
	StepCompanyProfile = "company_profile"
	StepOperations     = "operations"
	StepDocumentation  = "documentation"
	StepAgreement      = "agreement"
	StepComplete       = "complete"
)

// OnboardingSession is a server-side wizard draft. It accumulates field
// values step by step until the agreement step submits them as a
// registration.
type OnboardingSession struct {
	ID             string                 `json:"id"`
	Role           models.UserRole        `json:"role"`
	CurrentStep    string                 `json:"currentStep"`
	CompletedSteps []string               `json:"completedSteps"`
	Fields         map[string]interface{} `json:"fields"`
	Result         *RegistrationResult    `json:"result,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// ===== ADMIN DTOs =====

// AdminDashboardData is the combined payload for the admin dashboard.
type AdminDashboardData struct {
	Carriers []*models.CarrierProfile             `json:"carriers"`
	Shippers []*models.ShipperProfile             `json:"shippers"`
	Stats    *repositories.OnboardingStats        `json:"stats"`
	Trends   []repositories.RegistrationTrendData `json:"trends"`
}

// DocumentSlotStatus describes one required document slot for review.
type DocumentSlotStatus struct {
	Key    string `json:"key"`
	Filled bool   `json:"filled"`
	URL    string `json:"url,omitempty"`
}

// DocumentReview summarizes the fill state of an account's required
// document slots.
type DocumentReview struct {
	AccountType string               `json:"accountType"`
	ProfileID   string               `json:"profileId"`
	LegalName   string               `json:"legalName"`
	Slots       []DocumentSlotStatus `json:"slots"`
	Complete    bool                 `json:"complete"`
}

// ===== UPLOAD DTOs =====

// UploadResult is returned after an accepted document upload.
type UploadResult struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Size     int64  `json:"size"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
	HashPassword(password string) (string, error)
}

type RegistrationService interface {
	RegisterCarrier(ctx context.Context, req *CarrierOnboardRequest) (*RegistrationResult, error)
	RegisterShipper(ctx context.Context, req *ShipperOnboardRequest) (*RegistrationResult, error)
}

type OnboardingService interface {
	StartSession(ctx context.Context, req *StartOnboardingRequest) (*OnboardingSession, error)
	GetSession(ctx context.Context, sessionID string) (*OnboardingSession, error)
	AdvanceStep(ctx context.Context, sessionID string, req *AdvanceStepRequest) (*OnboardingSession, error)
}

type AdminService interface {
	GetDashboardData(ctx context.Context, adminID string, status *models.AccountStatus) (*AdminDashboardData, error)
	GetStats(ctx context.Context) (*repositories.OnboardingStats, error)
	SetStatus(ctx context.Context, accountType, id string, req *StatusUpdateRequest, adminID string) error
	DeleteAccount(ctx context.Context, accountType, id string, adminID string) error
	GetDocumentReview(ctx context.Context, accountType, id string) (*DocumentReview, error)
}

type ProfileService interface {
	GetCarrier(ctx context.Context, carrierID string) (*models.CarrierProfile, error)
	UpdateCarrier(ctx context.Context, carrierID string, req *CarrierUpdateRequest) (*models.CarrierProfile, error)
	GetShipper(ctx context.Context, shipperID string) (*models.ShipperProfile, error)
	UpdateShipper(ctx context.Context, shipperID string, req *ShipperUpdateRequest) (*models.ShipperProfile, error)
}

type UploadService interface {
	ProcessUpload(ctx context.Context, fileName, contentType string, data []byte) (*UploadResult, error)
}

type ExportService interface {
	// ExportAccountsXLSX builds a workbook with one sheet per account type.
	ExportAccountsXLSX(ctx context.Context) ([]byte, string, error)
}

type SetupService interface {
	// SeedDefaults creates the default admin and demo accounts if missing.
	SeedDefaults(ctx context.Context) error
}

type NotificationEventService interface {
	NotifyAdminNewApplication(ctx context.Context, accountType, profileID, legalName, contactEmail string) error
	PublishRegistered(ctx context.Context, accountType, profileID, userID string) error
	PublishStatusChanged(ctx context.Context, accountType, profileID string, from, to models.AccountStatus) error
	PublishAccountDeleted(ctx context.Context, accountType, profileID, userID string) error
	PublishStepAdvanced(ctx context.Context, sessionID string, role models.UserRole, from, to string) error
}

// ===== SERVICE MANAGER =====

// ServiceManager provides access to all service instances
type ServiceManager interface {
	Auth() AuthService
	Registration() RegistrationService
	Onboarding() OnboardingService
	Admin() AdminService
	Profile() ProfileService
	Upload() UploadService
	Export() ExportService
	Setup() SetupService
	NotificationEvent() NotificationEventService

	// Lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
