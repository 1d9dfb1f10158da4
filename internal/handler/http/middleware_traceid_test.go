package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic/internal/logger"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var capturedReq *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/pacientes", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, capturedReq
}

func TestWithTraceID_ReusesRequestHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rr, req := executeWithTraceID(h, "my-custom-trace-id")

	require.NotNil(t, req)
	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rr, req := executeWithTraceID(h, "")

	require.NotNil(t, req)
	id, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	first, _ := executeWithTraceID(h, "")
	second, _ := executeWithTraceID(h, "")

	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	_, req := executeWithTraceID(h, "abc")

	require.NotNil(t, req)
	assert.NotNil(t, logger.FromRequest(req))
}
