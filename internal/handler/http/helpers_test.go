package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/mock"
	"github.com/MKhiriev/go-clinic/internal/service"
	"github.com/MKhiriev/go-clinic/models"
)

const validToken = "valid-token"

type testHandler struct {
	*Handler
	authService    *mock.MockAuthService
	patientService *mock.MockPatientService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	patients := mock.NewMockPatientService(ctrl)

	h := NewHandler(&service.Services{
		AuthService:    auth,
		PatientService: patients,
	}, prometheus.NewRegistry(), logger.Nop())

	return &testHandler{Handler: h, authService: auth, patientService: patients}
}

// expectValidToken lets validToken through the auth middleware.
func (th *testHandler) expectValidToken() {
	th.authService.EXPECT().
		ParseToken(gomock.Any(), validToken).
		Return(models.Token{Claims: models.Claims{UserID: 1, Username: "admin"}}, nil)
}

func (th *testHandler) do(method, path, body string, authorized bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+validToken)
	}

	rr := httptest.NewRecorder()
	th.Init().ServeHTTP(rr, req)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) models.MessageResponse {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&msg))
	return msg
}

func decodeObject(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&obj))
	return obj
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
