package imagehost

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client uploads images to an external image host. The host expects a
// multipart POST carrying the file and an unsigned upload preset, and
// answers with a JSON body whose secure_url field is the public URL.
type Client struct {
	baseURL      string
	cloudName    string
	uploadPreset string
	httpClient   *http.Client
}

// Config holds image host connection details.
type Config struct {
	// BaseURL is the upload API root, e.g. "https://api.cloudinary.com/v1_1".
	BaseURL string
	// CloudName identifies the hosting account.
	CloudName string
	// UploadPreset is the unsigned preset sent with every upload.
	UploadPreset string
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// NewClient creates a new image host client.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload posts the file content as multipart form data together with the
// upload preset and returns the public URL of the hosted image. A response
// without a secure_url field is treated as a failed upload.
func (c *Client) Upload(filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to copy file content: %w", err)
	}
	if err := writer.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", fmt.Errorf("failed to write upload preset field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	uploadURL := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequest(http.MethodPost, uploadURL, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}

	return result.SecureURL, nil
}
