package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiss-kedaya/log-system/internal/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewHandler(logger.Nop()).Init()
}

func postPacket(t *testing.T, router http.Handler, body []byte, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/logs", bytes.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestIntake_AcceptsPacket(t *testing.T) {
	router := newTestRouter(t)

	rr := postPacket(t, router, bytes.Repeat([]byte{0xAB}, 256+16+16), "application/octet-stream")

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestIntake_EchoesRequestID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/logs", bytes.NewReader([]byte{1}))
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))
}

func TestIntake_GeneratesRequestIDWhenAbsent(t *testing.T) {
	router := newTestRouter(t)

	rr := postPacket(t, router, []byte{1}, "application/octet-stream")

	require.Equal(t, http.StatusAccepted, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestIntake_RejectsWrongContentType(t *testing.T) {
	router := newTestRouter(t)

	rr := postPacket(t, router, []byte(`{"event":"user_login"}`), "application/json")

	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
}

func TestIntake_RejectsEmptyBody(t *testing.T) {
	router := newTestRouter(t)

	rr := postPacket(t, router, nil, "application/octet-stream")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestIntake_RejectsOversizedBody(t *testing.T) {
	router := newTestRouter(t)

	rr := postPacket(t, router, make([]byte, maxPacketSize+1), "application/octet-stream")

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
