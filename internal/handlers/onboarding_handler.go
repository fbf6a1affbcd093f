package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lfl-logistics/onboarding-service/internal/services"
	"github.com/lfl-logistics/onboarding-service/internal/utils"
)

// OnboardingHandler exposes the step wizard draft endpoints
type OnboardingHandler struct {
	BaseHandler
	onboardingService services.OnboardingService
}

func NewOnboardingHandler(onboardingService services.OnboardingService, logger utils.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		BaseHandler:       NewBaseHandler(logger),
		onboardingService: onboardingService,
	}
}

// StartSession opens a new wizard draft
// @Summary Start an onboarding wizard session
// @Description Creates a draft at the first step for the requested account role
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body services.StartOnboardingRequest true "Account role"
// @Success 201 {object} services.OnboardingSession
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /onboarding/start [post]
func (h *OnboardingHandler) StartSession(c *gin.Context) {
	var req services.StartOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation",
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Starting onboarding session", "role", req.Role)

	session, err := h.onboardingService.StartSession(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession retrieves a wizard draft by ID
// @Summary Get an onboarding wizard session
// @Tags onboarding
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} services.OnboardingSession
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /onboarding/{id} [get]
func (h *OnboardingHandler) GetSession(c *gin.Context) {
	id := c.Param("id")

	session, err := h.onboardingService.GetSession(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// NextStep merges the current step's fields and advances the wizard
// @Summary Advance the wizard to the next step
// @Description Merges submitted fields into the draft and moves forward. Leaving the
// agreement step submits the registration.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body services.AdvanceStepRequest false "Step field values"
// @Success 200 {object} services.OnboardingSession
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /onboarding/{id}/next [post]
func (h *OnboardingHandler) NextStep(c *gin.Context) {
	h.advance(c, "next")
}

// BackStep moves the wizard to the previous step
// @Summary Move the wizard back one step
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} services.OnboardingSession
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /onboarding/{id}/back [post]
func (h *OnboardingHandler) BackStep(c *gin.Context) {
	h.advance(c, "back")
}

func (h *OnboardingHandler) advance(c *gin.Context, direction string) {
	id := c.Param("id")

	var req services.AdvanceStepRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation",
				Message: "Invalid request payload",
				Details: err.Error(),
			})
			return
		}
	}
	req.Direction = direction

	h.LogRequest(c, "Advancing onboarding session", "session_id", id, "direction", direction)

	session, err := h.onboardingService.AdvanceStep(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}
