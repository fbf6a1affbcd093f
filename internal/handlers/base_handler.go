package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lfl-logistics/onboarding-service/internal/repositories"
	"github.com/lfl-logistics/onboarding-service/internal/services"
	"github.com/lfl-logistics/onboarding-service/internal/utils"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
)

// ErrorResponse is the failure payload for every endpoint. Error carries
// the failure kind, MissingFields is populated only for registration
// payloads rejected over absent required fields.
type ErrorResponse struct {
	Error         string      `json:"error"`
	Message       string      `json:"message"`
	Details       interface{} `json:"details,omitempty"`
	MissingFields []string    `json:"missingFields,omitempty"`
}

// SuccessResponse wraps simple acknowledgement payloads
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// BaseHandler provides shared logging and error translation for handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs handler entry with request context
func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	fields := append([]any{"method", c.Request.Method, "path", c.Request.URL.Path}, args...)
	h.logger.Info(msg, fields...)
}

// LogError logs a handler failure with request context
func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	fields := append([]any{"error", err, "method", c.Request.Method, "path", c.Request.URL.Path}, args...)
	h.logger.Error(msg, fields...)
}

// handleServiceError translates service layer errors into HTTP responses
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var missingErr *services.MissingFieldsError
	if errors.As(err, &missingErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:         "validation",
			Message:       missingErr.Error(),
			MissingFields: missingErr.Fields,
		})
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation",
			Message: validationErrs.Error(),
			Details: validationErrs,
		})
		return
	}

	var businessErr *services.BusinessRuleError
	if errors.As(err, &businessErr) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "business_rule",
			Message: businessErr.Message,
		})
		return
	}

	var permissionErr *services.PermissionError
	if errors.As(err, &permissionErr) {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "forbidden",
			Message: permissionErr.Error(),
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrEmailAlreadyRegistered),
		errors.Is(err, services.ErrDOTAlreadyRegistered):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "conflict",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid email or password",
		})
	case errors.Is(err, services.ErrCarrierNotFound),
		errors.Is(err, services.ErrShipperNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		repositories.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidStepTransition),
		errors.Is(err, services.ErrOnboardingComplete),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidAccountType),
		errors.Is(err, services.ErrFileTooLarge),
		errors.Is(err, services.ErrUnsupportedFileType):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation",
			Message: err.Error(),
		})
	default:
		h.LogError(c, err, "Unhandled service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal",
			Message: "Internal server error",
		})
	}
}
