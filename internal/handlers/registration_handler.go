package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lfl-logistics/onboarding-service/internal/services"
	"github.com/lfl-logistics/onboarding-service/internal/utils"
)

// RegistrationHandler exposes the one-shot application endpoints
type RegistrationHandler struct {
	BaseHandler
	registrationService services.RegistrationService
}

func NewRegistrationHandler(registrationService services.RegistrationService, logger utils.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		BaseHandler:         NewBaseHandler(logger),
		registrationService: registrationService,
	}
}

// OnboardCarrier submits a complete carrier application
// @Summary Submit a carrier application
// @Description Validates the carrier payload, creates the pending profile and login account
// @Tags registration
// @Accept json
// @Produce json
// @Param request body services.CarrierOnboardRequest true "Carrier application"
// @Success 201 {object} services.RegistrationResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /carriers/onboard [post]
func (h *RegistrationHandler) OnboardCarrier(c *gin.Context) {
	var req services.CarrierOnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation",
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Carrier application received", "legal_name", req.LegalName)

	result, err := h.registrationService.RegisterCarrier(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// OnboardShipper submits a complete shipper application
// @Summary Submit a shipper application
// @Description Validates the shipper payload, creates the pending profile and login account
// @Tags registration
// @Accept json
// @Produce json
// @Param request body services.ShipperOnboardRequest true "Shipper application"
// @Success 201 {object} services.RegistrationResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shippers/onboard [post]
func (h *RegistrationHandler) OnboardShipper(c *gin.Context) {
	var req services.ShipperOnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation",
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Shipper application received", "legal_name", req.LegalName)

	result, err := h.registrationService.RegisterShipper(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
