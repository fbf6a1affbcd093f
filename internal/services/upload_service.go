package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the pre-encoding limit; base64 growth keeps the stored
// document comfortably under the row size ceiling.
const MaxUploadSize = 5 << 20 // 5 MiB

// allowedUploadTypes maps accepted extensions to their canonical MIME type.
var allowedUploadTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
}

type uploadService struct {
	logger *slog.Logger
}

func NewUploadService(logger *slog.Logger) UploadService {
	return &uploadService{logger: logger}
}

// ProcessUpload validates the file and returns an inline base64 data URL
// reference that callers store in a document slot.
func (s *uploadService) ProcessUpload(ctx context.Context, fileName, contentType string, data []byte) (*UploadResult, error) {
	if int64(len(data)) > MaxUploadSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, len(data), MaxUploadSize)
	}
	if len(data) == 0 {
		return nil, NewBusinessRuleError("Uploaded file is empty", "upload_not_empty")
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	mimeType, ok := allowedUploadTypes[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	// Prefer the declared content type when it matches an accepted one
	if contentType != "" {
		if accepted(contentType) {
			mimeType = contentType
		} else {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
		}
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	url := fmt.Sprintf("data:%s;base64,%s", mimeType, encoded)

	s.logger.Info("Document upload accepted", "file_name", fileName, "file_type", mimeType, "size", len(data))

	return &UploadResult{
		Success:  true,
		URL:      url,
		FileName: fileName,
		FileType: mimeType,
		Size:     int64(len(data)),
	}, nil
}

func accepted(contentType string) bool {
	for _, mime := range allowedUploadTypes {
		if contentType == mime {
			return true
		}
	}
	return false
}
