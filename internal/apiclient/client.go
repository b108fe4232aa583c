package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	apperrors "github.com/antonkarev/healthhub/internal/errors"
	"github.com/antonkarev/healthhub/internal/logger"
)

// Client is the single HTTP gateway every feature talks through. It carries
// the backend base URL and injects the bearer token once one is set.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken installs the auth token injected on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the auth token.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the error payload shape the backend uses. FastAPI puts the
// text under "detail", other handlers under "message".
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// PostJSON sends payload as JSON to path and decodes the response into out.
// A transport failure becomes a network error, a non-2xx response a server
// error carrying the status and the backend's message.
func (c *Client) PostJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "ENCODE", "Failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "REQUEST", "Failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// Upload sends a multipart file upload to path and decodes the response
// into out. The caller keeps ownership of r.
func (c *Client) Upload(ctx context.Context, path, fieldName, fileName string, r io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "ENCODE", "Failed to build upload")
	}
	if _, err := io.Copy(part, r); err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "ENCODE", "Failed to read upload data")
	}
	if err := writer.Close(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "ENCODE", "Failed to finish upload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "REQUEST", "Failed to build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Request failed", "path", req.URL.Path, "error", err)
		return apperrors.NewNetworkError(err, c.baseURL)
	}
	defer resp.Body.Close()

	logger.Debug("Request completed",
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "READ", "Failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		message := eb.Detail
		if message == "" {
			message = eb.Message
		}
		return apperrors.NewServerError(resp.StatusCode, message)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "DECODE",
			fmt.Sprintf("Failed to decode response from %s", req.URL.Path))
	}
	return nil
}
