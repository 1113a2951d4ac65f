package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalUploader writes files under a base directory and serves them from a
// static route. Used in development when no Cloudinary credentials are set.
type LocalUploader struct {
	basePath string
	baseURL  string
}

func NewLocalUploader(basePath, baseURL string) (*LocalUploader, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (u *LocalUploader) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	ext := filepath.Ext(filename)
	name := uuid.NewString() + ext

	path := filepath.Join(u.basePath, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return u.baseURL + "/" + name, nil
}
