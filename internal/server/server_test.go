package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avramis/navlens/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Port:               8001,
		LogLevel:           "info",
		CORSAllowedOrigins: []string{"*"},
		SMADefaultWindow:   30,
	}
	log := zerolog.New(nil).Level(zerolog.Disabled)

	return New(Config{Log: log, Config: cfg, DevMode: true})
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, "navlens", response["service"])
}

func TestHandleSystemStatus(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/system/status", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data struct {
			Status        string  `json:"status"`
			UptimeSeconds float64 `json:"uptime_seconds"`
			Goroutines    int     `json:"goroutines"`
			GoVersion     string  `json:"go_version"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, "ok", response.Data.Status)
	assert.GreaterOrEqual(t, response.Data.UptimeSeconds, 0.0)
	assert.Greater(t, response.Data.Goroutines, 0)
	assert.NotEmpty(t, response.Data.GoVersion)
}

func TestDeriveRouteIsMounted(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analytics/derive", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	// Empty body fails JSON decoding: the route exists and answers 400,
	// not 404/405.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
