package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-booking-portal/internal/utils"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAPIClient(APIConfig{BaseURL: server.URL + "/", Token: "secret", Timeout: 5 * time.Second})
}

func TestAPIClient_Headers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-123", r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Music", body["category"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 5}`))
	})

	ctx := utils.WithRequestID(context.Background(), "req-123")
	var out struct {
		ID int `json:"id"`
	}
	require.NoError(t, client.Post(ctx, "/products/", map[string]string{"category": "Music"}, &out))
	assert.Equal(t, 5, out.ID)
}

func TestAPIClient_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.Delete(context.Background(), "/media/3/"))
}

func TestAPIClient_ErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "message field", status: 400, body: `{"message": "Category is invalid"}`, wantMessage: "Category is invalid"},
		{name: "detail field", status: 403, body: `{"detail": "Not allowed"}`, wantMessage: "Not allowed"},
		{name: "error field", status: 409, body: `{"error": "Conflict"}`, wantMessage: "Conflict"},
		{name: "first field error", status: 400, body: `{"name": ["This field is required."], "city": ["Too long."]}`, wantMessage: "city: Too long."},
		{name: "not json", status: 502, body: `<html>Bad gateway</html>`, wantMessage: GenericErrorMessage},
		{name: "empty object", status: 500, body: `{}`, wantMessage: GenericErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			err := client.Get(context.Background(), "/products/1/", nil)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestAPIClient_PostMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "7", r.FormValue("product"))
		assert.Equal(t, "image", r.FormValue("media_type"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "hero.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 21, "product": 7, "media_type": "image", "file": "https://cdn.example.com/hero.jpg"}`))
	})

	media, err := NewMediaRepository(client).Upload(context.Background(), &MediaUpload{
		ProductID:   7,
		MediaType:   "image",
		Filename:    "hero.jpg",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpeg-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, 21, media.ID)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", media.File)
}

func TestAPIClient_PostMultipartEscapesFilename(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, `my "best" shot.jpg`, header.Filename)
		assert.Equal(t, "7", r.FormValue("product"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 22, "product": 7, "media_type": "image"}`))
	})

	media, err := NewMediaRepository(client).Upload(context.Background(), &MediaUpload{
		ProductID:   7,
		MediaType:   "image",
		Filename:    `my "best" shot.jpg`,
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpeg-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, 22, media.ID)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{StatusCode: 404}))
	assert.False(t, IsNotFound(&APIError{StatusCode: 400}))
	assert.False(t, IsNotFound(errors.New("plain")))
}
