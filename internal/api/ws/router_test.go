package ws

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/habiro-server/internal/mocks"
	"github.com/dtroode/habiro-server/internal/testutil"
)

func TestRouter_Healthz(t *testing.T) {
	h := NewHandler(nil, mocks.NewTokenService(t), Options{}, testutil.MakeNoopLogger())
	router := NewRouter(h, nil, 10)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	h := NewHandler(nil, mocks.NewTokenService(t), Options{}, testutil.MakeNoopLogger())
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "# metrics")
	})
	router := NewRouter(h, metricsHandler, 10)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())
}

func TestRouter_UpgradeRateLimitedByIP(t *testing.T) {
	h := NewHandler(nil, mocks.NewTokenService(t), Options{}, testutil.MakeNoopLogger())
	router := NewRouter(h, nil, 2)

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/ws/chat/room", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	require.Len(t, codes, 3)
	// No token, so admitted requests stop at authentication.
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func TestRouter_UnknownRoute(t *testing.T) {
	h := NewHandler(nil, mocks.NewTokenService(t), Options{}, testutil.MakeNoopLogger())
	router := NewRouter(h, nil, 10)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
