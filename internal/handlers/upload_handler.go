package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lfl-logistics/onboarding-service/internal/services"
	"github.com/lfl-logistics/onboarding-service/internal/utils"
)

// UploadHandler accepts document uploads for profile document slots
type UploadHandler struct {
	BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService, logger utils.Logger) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   NewBaseHandler(logger),
		uploadService: uploadService,
	}
}

// Upload accepts a multipart document and returns its stored data URL
// @Summary Upload a document
// @Description Accepts a PDF or image up to 5 MiB and returns a data URL for a document slot
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Success 200 {object} services.UploadResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation",
			Message: "A file field is required",
			Details: err.Error(),
		})
		return
	}

	if fileHeader.Size > services.MaxUploadSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation",
			Message: "File exceeds the 5 MiB upload limit",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.LogError(c, err, "Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal",
			Message: "Failed to read uploaded file",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, services.MaxUploadSize+1))
	if err != nil {
		h.LogError(c, err, "Failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal",
			Message: "Failed to read uploaded file",
		})
		return
	}

	h.LogRequest(c, "Processing upload", "file_name", fileHeader.Filename, "size", fileHeader.Size)

	result, err := h.uploadService.ProcessUpload(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
