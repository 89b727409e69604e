package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	healthy := NewHealthHandler(map[string]Pinger{
		"redis": pingerFunc(func(ctx context.Context) error { return nil }),
	})
	rr := httptest.NewRecorder()
	healthy.Health(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "ok", "checks": {"redis": "ok"}}`, rr.Body.String())

	degraded := NewHealthHandler(map[string]Pinger{
		"redis": pingerFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
	})
	rr = httptest.NewRecorder()
	degraded.Health(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status": "degraded", "checks": {"redis": "connection refused"}}`, rr.Body.String())
}
