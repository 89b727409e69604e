package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-booking-portal/internal/middleware"
	"vendor-booking-portal/internal/models"
	"vendor-booking-portal/internal/repositories"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantAlert  string
	}{
		{
			name:       "cart rejection",
			err:        models.ErrBulkCapReached,
			wantStatus: http.StatusConflict,
			wantAlert:  "The maximum number of tickets for this pricing has been reached",
		},
		{
			name:       "upstream client error keeps status",
			err:        fmt.Errorf("failed to create product: %w", &repositories.APIError{StatusCode: 400, Message: "Category is invalid"}),
			wantStatus: http.StatusBadRequest,
			wantAlert:  "Category is invalid",
		},
		{
			name:       "upstream server error becomes bad gateway",
			err:        &repositories.APIError{StatusCode: 500, Message: repositories.GenericErrorMessage},
			wantStatus: http.StatusBadGateway,
			wantAlert:  repositories.GenericErrorMessage,
		},
		{
			name:       "missing draft",
			err:        models.ErrDraftNotFound,
			wantStatus: http.StatusConflict,
			wantAlert:  "Start by classifying your product",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("%w: %d", models.ErrProductNotFound, 12),
			wantStatus: http.StatusNotFound,
			wantAlert:  "Product not found",
		},
		{
			name:       "unsupported media",
			err:        fmt.Errorf("%w: .pdf", models.ErrUnsupportedMedia),
			wantStatus: http.StatusBadRequest,
			wantAlert:  "Unsupported media type",
		},
		{
			name:       "anything else",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusBadGateway,
			wantAlert:  repositories.GenericErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			var resp middleware.AlertResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantAlert, resp.Alert)
		})
	}
}

func TestWriteError_FieldErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, models.FieldErrors{"email": {"Enter a valid email address"}})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var resp middleware.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Enter a valid email address"}, resp.Errors["email"])
	assert.NotEmpty(t, resp.Message)
}

func TestDecodeJSON(t *testing.T) {
	var form models.TicketModeRequest

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"mode": "bulk"}`))
	assert.True(t, decodeJSON(rr, req, &form))
	assert.Equal(t, models.ModeBulk, form.Mode)

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"mode":`))
	assert.False(t, decodeJSON(rr, req, &form))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Cart is empty", capitalize("cart is empty"))
	assert.Equal(t, "Already", capitalize("Already"))
	assert.Equal(t, "", capitalize(""))
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, map[string]float64{"total": math.NaN()})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}
