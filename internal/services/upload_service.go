package services

import (
	"context"
	"path/filepath"
	"strings"

	"resumebuilder_backend/internal/media"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

// ImageUploader validates and stores image uploads.
type ImageUploader interface {
	UploadImage(ctx context.Context, file *dto.UploadFile) (string, error)
}

type ImageUploadService struct {
	uploader     media.Uploader
	maxSize      int64
	allowedTypes map[string]struct{}
}

func NewImageUploadService(uploader media.Uploader, maxSize int64, allowedTypes []string) *ImageUploadService {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(t)] = struct{}{}
	}
	return &ImageUploadService{
		uploader:     uploader,
		maxSize:      maxSize,
		allowedTypes: allowed,
	}
}

// UploadImage enforces the size cap and extension allow-list before handing
// the bytes to the media backend.
func (s *ImageUploadService) UploadImage(ctx context.Context, file *dto.UploadFile) (string, error) {
	if file == nil || len(file.Data) == 0 {
		return "", apperrors.NewBadRequestError("File is required")
	}
	if int64(len(file.Data)) > s.maxSize {
		return "", apperrors.ErrFileTooLarge
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if _, ok := s.allowedTypes[ext]; !ok {
		return "", apperrors.ErrInvalidFileType
	}

	url, err := s.uploader.Upload(ctx, file.Filename, file.ContentType, file.Data)
	if err != nil {
		return "", apperrors.UpstreamError(err, "media", "Image upload failed")
	}
	return url, nil
}
