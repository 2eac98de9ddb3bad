package handlers_test

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityHeaders(t *testing.T) {
	app, _ := newTestApp(t)

	w := doJSON(t, app, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	headers := w.Header()
	assert.Equal(t, "SAMEORIGIN", headers.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "default-src 'self'; object-src 'none'", headers.Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", headers.Get("Referrer-Policy"))
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	app, _ := newTestApp(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	app.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDAssigned(t *testing.T) {
	app, _ := newTestApp(t)

	w := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRequestIDPreserved(t *testing.T) {
	app, _ := newTestApp(t)

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("X-Request-Id", "abc-123")
	w := httptest.NewRecorder()
	app.ServeHTTP(w, r)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-Id"))
}

func TestMetricsUseRoutePattern(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("FROM accounts WHERE id = ").
		WillReturnError(sql.ErrNoRows)

	doJSON(t, app, http.MethodGet, "/accounts/12345", nil)

	w := doJSON(t, app, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `/accounts/{account_id}`)
	assert.NotContains(t, w.Body.String(), `/accounts/12345`)
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	// prime the request counter
	doJSON(t, app, http.MethodGet, "/health", nil)

	w := doJSON(t, app, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
