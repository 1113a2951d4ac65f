package media

import "context"

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}
