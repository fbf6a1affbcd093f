package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lfl-logistics/onboarding-service/internal/services"
	"github.com/lfl-logistics/onboarding-service/internal/utils"
)

// ProfileHandler exposes the self-service profile endpoints. The profile
// ID always comes from the caller's token, never from the URL.
type ProfileHandler struct {
	BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService, logger utils.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    NewBaseHandler(logger),
		profileService: profileService,
	}
}

// GetCarrierProfile returns the caller's carrier profile
// @Summary Get own carrier profile
// @Tags profiles
// @Produce json
// @Success 200 {object} models.CarrierProfile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /carriers/me [get]
func (h *ProfileHandler) GetCarrierProfile(c *gin.Context) {
	profileID, err := GetProfileIDFromContext(c)
	if err != nil || profileID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "No carrier profile linked to this account",
		})
		return
	}

	profile, err := h.profileService.GetCarrier(c.Request.Context(), profileID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateCarrierProfile updates the writable fields of the caller's carrier profile
// @Summary Update own carrier profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body services.CarrierUpdateRequest true "Writable profile fields"
// @Success 200 {object} models.CarrierProfile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /carriers/me [patch]
func (h *ProfileHandler) UpdateCarrierProfile(c *gin.Context) {
	profileID, err := GetProfileIDFromContext(c)
	if err != nil || profileID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "No carrier profile linked to this account",
		})
		return
	}

	var req services.CarrierUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation",
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating carrier profile", "carrier_id", profileID)

	profile, err := h.profileService.UpdateCarrier(c.Request.Context(), profileID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetShipperProfile returns the caller's shipper profile
// @Summary Get own shipper profile
// @Tags profiles
// @Produce json
// @Success 200 {object} models.ShipperProfile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shippers/me [get]
func (h *ProfileHandler) GetShipperProfile(c *gin.Context) {
	profileID, err := GetProfileIDFromContext(c)
	if err != nil || profileID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "No shipper profile linked to this account",
		})
		return
	}

	profile, err := h.profileService.GetShipper(c.Request.Context(), profileID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateShipperProfile updates the writable fields of the caller's shipper profile
// @Summary Update own shipper profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body services.ShipperUpdateRequest true "Writable profile fields"
// @Success 200 {object} models.ShipperProfile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shippers/me [patch]
func (h *ProfileHandler) UpdateShipperProfile(c *gin.Context) {
	profileID, err := GetProfileIDFromContext(c)
	if err != nil || profileID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "No shipper profile linked to this account",
		})
		return
	}

	var req services.ShipperUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation",
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating shipper profile", "shipper_id", profileID)

	profile, err := h.profileService.UpdateShipper(c.Request.Context(), profileID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
