package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/ks-server/internal/logger"
	"github.com/MKhiriev/ks-server/internal/mock"
	"github.com/MKhiriev/ks-server/internal/service"
	"github.com/MKhiriev/ks-server/internal/validators"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler creates a Handler with a nop logger.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// newLookupHandler builds a Handler whose ProjectService is a gomock mock.
func newLookupHandler(t *testing.T) (*Handler, *mock.MockProjectService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	projects := mock.NewMockProjectService(ctrl)

	h := NewHandler(
		&service.Services{ProjectService: projects},
		validators.NewLookupRequestValidator(),
		logger.Nop(),
	)
	return h, projects
}

// newLookupRequest builds POST / with a JSON content type.
func newLookupRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// serve routes req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
