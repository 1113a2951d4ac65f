package media

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

const cloudinaryUploadURL = "https://api.cloudinary.com/v1_1/%s/image/upload"

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// CloudinaryUploader talks to the Cloudinary upload API directly with a
// signed multipart request.
type CloudinaryUploader struct {
	cfg        CloudinaryConfig
	httpClient *http.Client
}

func NewCloudinaryUploader(cfg CloudinaryConfig) *CloudinaryUploader {
	return &CloudinaryUploader{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *CloudinaryUploader) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := u.sign(timestamp)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	_ = w.WriteField("api_key", u.cfg.APIKey)
	_ = w.WriteField("timestamp", timestamp)
	_ = w.WriteField("folder", u.cfg.Folder)
	_ = w.WriteField("signature", signature)
	if err := w.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf(cloudinaryUploadURL, u.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed cloudinaryResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("cloudinary upload: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary upload: status %d: %s", resp.StatusCode, parsed.Error.Message)
	}
	return parsed.SecureURL, nil
}

// sign hashes the sorted upload params plus the API secret, per the
// Cloudinary signed-upload scheme.
func (u *CloudinaryUploader) sign(timestamp string) string {
	toSign := fmt.Sprintf("folder=%s&timestamp=%s%s", u.cfg.Folder, timestamp, u.cfg.APISecret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}
