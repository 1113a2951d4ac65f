package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

type stubMediaBackend struct {
	url string
	err error
}

func (s *stubMediaBackend) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func newUploadServiceForTest() *ImageUploadService {
	backend := &stubMediaBackend{url: "https://cdn.example.com/img.png"}
	return NewImageUploadService(backend, 5*1024*1024, []string{"jpeg", "jpg", "png"})
}

func TestUploadImageHappyPath(t *testing.T) {
	svc := newUploadServiceForTest()

	url, err := svc.UploadImage(context.Background(), &dto.UploadFile{
		Filename: "photo.PNG", ContentType: "image/png", Data: []byte("png-bytes"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img.png", url)
}

func TestUploadImageTooLarge(t *testing.T) {
	svc := newUploadServiceForTest()

	_, err := svc.UploadImage(context.Background(), &dto.UploadFile{
		Filename: "big.png", Data: bytes.Repeat([]byte("x"), 5*1024*1024+1),
	})
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestUploadImageWrongType(t *testing.T) {
	svc := newUploadServiceForTest()

	for _, name := range []string{"résumé.pdf", "shell.sh", "noext"} {
		_, err := svc.UploadImage(context.Background(), &dto.UploadFile{
			Filename: name, Data: []byte("data"),
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidFileType, "file %q", name)
	}
}

func TestUploadImageEmptyFile(t *testing.T) {
	svc := newUploadServiceForTest()

	_, err := svc.UploadImage(context.Background(), nil)
	assert.Error(t, err)
	_, err = svc.UploadImage(context.Background(), &dto.UploadFile{Filename: "a.png"})
	assert.Error(t, err)
}

func TestUploadImageBackendFailure(t *testing.T) {
	backend := &stubMediaBackend{err: assert.AnError}
	svc := NewImageUploadService(backend, 5*1024*1024, []string{"png"})

	_, err := svc.UploadImage(context.Background(), &dto.UploadFile{
		Filename: "a.png", Data: []byte("data"),
	})
	var appErr *apperrors.AppError
	assert.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeExternalServiceError, appErr.Code)
}
