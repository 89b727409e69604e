package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"
	"time"

	"vendor-booking-portal/internal/utils"
)

// GenericErrorMessage is shown when the booking API gives no usable message
const GenericErrorMessage = "Something went wrong. Please try again."

// APIConfig configures the booking API client
type APIConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// APIClient is a thin JSON client for the booking REST API
type APIClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewAPIClient creates a new booking API client
func NewAPIClient(config APIConfig) *APIClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &APIClient{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		token:   config.Token,
		client:  &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx answer from the booking API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking api error (%d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the booking API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Get fetches path and decodes the JSON answer into out
func (c *APIClient) Get(ctx context.Context, path string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// Post sends body as JSON
func (c *APIClient) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// Put sends body as JSON
func (c *APIClient) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

// Patch sends body as JSON
func (c *APIClient) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

// Delete removes the resource at path
func (c *APIClient) Delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// MultipartFile is a file part of a multipart upload
type MultipartFile struct {
	Field       string
	Filename    string
	ContentType string
	Content     io.Reader
}

// quoteEscaper escapes Content-Disposition parameters the way
// multipart.Writer.CreateFormFile does
var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// PostMultipart uploads fields and a single file as multipart/form-data
func (c *APIClient) PostMultipart(ctx context.Context, path string, fields map[string]string, file MultipartFile, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := writer.WriteField(key, fields[key]); err != nil {
			return fmt.Errorf("failed to write multipart field %s: %w", key, err)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(file.Field), quoteEscaper.Replace(file.Filename)))
	if file.ContentType != "" {
		header.Set("Content-Type", file.ContentType)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create multipart file part: %w", err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return fmt.Errorf("failed to copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), out)
}

func (c *APIClient) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(jsonData)
		contentType = "application/json"
	}

	return c.do(ctx, method, path, reader, contentType, out)
}

func (c *APIClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create %s %s request: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if requestID := utils.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("booking api %s %s failed: %v", method, path, err)
		return fmt.Errorf("failed to send %s %s request: %w", method, path, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: extractErrorMessage(bodyBytes)}
		log.Printf("booking api %s %s returned %d: %s", method, path, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}

// extractErrorMessage prefers the server's message, then its detail, then the
// first field error, then the generic fallback.
func extractErrorMessage(body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return GenericErrorMessage
	}

	for _, key := range []string{"message", "detail", "error"} {
		if msg, ok := payload[key].(string); ok && msg != "" {
			return msg
		}
	}

	fields := make([]string, 0, len(payload))
	for field := range payload {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		switch v := payload[field].(type) {
		case string:
			if v != "" {
				return fmt.Sprintf("%s: %s", field, v)
			}
		case []interface{}:
			if len(v) > 0 {
				if msg, ok := v[0].(string); ok {
					return fmt.Sprintf("%s: %s", field, msg)
				}
			}
		}
	}

	return GenericErrorMessage
}
