package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(&mockProfileService{}, &mockAuthService{}, false)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestTraceIDHeaderIsEchoed(t *testing.T) {
	h := newTestHandler(&mockProfileService{}, &mockAuthService{}, false)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := serve(t, h, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestTraceIDHeaderIsGenerated(t *testing.T) {
	h := newTestHandler(&mockProfileService{}, &mockAuthService{}, false)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
