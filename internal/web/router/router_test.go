package router_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbershop-express/booking-web/internal/config"
	"github.com/barbershop-express/booking-web/internal/schedulingapi"
	"github.com/barbershop-express/booking-web/internal/session"
	"github.com/barbershop-express/booking-web/internal/web/handlers"
	"github.com/barbershop-express/booking-web/internal/web/router"
	"github.com/barbershop-express/booking-web/internal/web/templates"
	"github.com/barbershop-express/booking-web/pkg/logging"
)

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })
	store := session.NewStore(redisClient, time.Hour)

	logger := logging.NewWithWriter(io.Discard, "error")
	renderer, err := templates.New(logger)
	require.NoError(t, err)

	api := schedulingapi.NewClient("http://localhost:0/api", time.Second, logger, nil)
	h := handlers.New(cfg, logger, renderer, api, store, nil)
	return router.New(cfg, logger, h, store)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t, &config.Config{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, &config.Config{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	cfg := &config.Config{CORSAllowedOrigins: []string{"https://app.example.com"}}
	r := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	cfg := &config.Config{CORSAllowedOrigins: []string{"https://app.example.com"}}
	r := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
