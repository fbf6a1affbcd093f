package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/services"
	"github.com/lfl-logistics/onboarding-service/internal/utils"
)

// AdminHandler exposes the approval dashboard endpoints
type AdminHandler struct {
	BaseHandler
	adminService  services.AdminService
	exportService services.ExportService
}

func NewAdminHandler(adminService services.AdminService, exportService services.ExportService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   NewBaseHandler(logger),
		adminService:  adminService,
		exportService: exportService,
	}
}

// GetDashboardData returns all applications plus aggregate stats
// @Summary Get admin dashboard data
// @Description Returns every carrier and shipper application together with onboarding stats
// @Tags admin
// @Produce json
// @Param status query string false "Filter by profile status" Enums(pending, approved, suspended)
// @Success 200 {object} services.AdminDashboardData
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/data [get]
func (h *AdminHandler) GetDashboardData(c *gin.Context) {
	adminID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
		return
	}

	var status *models.AccountStatus
	if q := c.Query("status"); q != "" {
		s := models.AccountStatus(q)
		status = &s
	}

	data, err := h.adminService.GetDashboardData(c.Request.Context(), adminID, status)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// SetStatus changes an application's approval status
// @Summary Set account status
// @Description Updates a carrier or shipper profile status and keeps the login account in sync
// @Tags admin
// @Accept json
// @Produce json
// @Param type path string true "Account type" Enums(carrier, shipper)
// @Param id path string true "Profile ID"
// @Param request body services.StatusUpdateRequest true "New status"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/{type}/{id} [patch]
func (h *AdminHandler) SetStatus(c *gin.Context) {
	accountType := c.Param("type")
	id := c.Param("id")

	adminID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
		return
	}

	var req services.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation",
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Setting account status", "account_type", accountType, "profile_id", id, "status", req.Status)

	if err := h.adminService.SetStatus(c.Request.Context(), accountType, id, &req, adminID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: fmt.Sprintf("Status updated to %s", req.Status),
	})
}

// DeleteAccount removes an application and its login account
// @Summary Delete an account
// @Description Deletes a carrier or shipper profile and its linked user in one transaction
// @Tags admin
// @Produce json
// @Param type path string true "Account type" Enums(carrier, shipper)
// @Param id path string true "Profile ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/{type}/{id} [delete]
func (h *AdminHandler) DeleteAccount(c *gin.Context) {
	accountType := c.Param("type")
	id := c.Param("id")

	adminID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
		return
	}

	h.LogRequest(c, "Deleting account", "account_type", accountType, "profile_id", id)

	if err := h.adminService.DeleteAccount(c.Request.Context(), accountType, id, adminID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Account deleted",
	})
}

// GetDocumentReview summarizes an application's document slots
// @Summary Review an account's documents
// @Tags admin
// @Produce json
// @Param type path string true "Account type" Enums(carrier, shipper)
// @Param id path string true "Profile ID"
// @Success 200 {object} services.DocumentReview
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/{type}/{id}/documents [get]
func (h *AdminHandler) GetDocumentReview(c *gin.Context) {
	accountType := c.Param("type")
	id := c.Param("id")

	review, err := h.adminService.GetDocumentReview(c.Request.Context(), accountType, id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// ExportAccounts streams all applications as an Excel workbook
// @Summary Export accounts to Excel
// @Description Builds an xlsx workbook with one sheet per account type
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse
// @Router /admin/export [get]
func (h *AdminHandler) ExportAccounts(c *gin.Context) {
	h.LogRequest(c, "Exporting accounts")

	data, filename, err := h.exportService.ExportAccountsXLSX(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
