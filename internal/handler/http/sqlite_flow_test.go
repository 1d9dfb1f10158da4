package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic/internal/config"
	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/service"
	"github.com/MKhiriev/go-clinic/internal/store"
	"github.com/MKhiriev/go-clinic/models"
)

// newSQLiteRouter wires the real services over a migrated in-memory SQLite
// database and returns the router plus a valid bearer token. The test is
// skipped when go-sqlite3 is unavailable (built without cgo).
func newSQLiteRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewDB(ctx, config.DB{DSN: "sqlite://:memory:"}, logger.Nop())
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	cfg := &config.StructuredConfig{
		App: config.App{TokenSignKey: "flow-secret", TokenDuration: 20 * time.Minute},
	}
	services := service.NewServices(store.NewStorages(db, logger.Nop()), cfg, logger.Nop())

	token, err := services.AuthService.CreateToken(ctx, models.User{UserID: 1, Username: "admin"})
	require.NoError(t, err)

	return NewHandler(services, prometheus.NewRegistry(), logger.Nop()).Init(), token.SignedString
}

func serve(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestSQLiteFlow_UpdateAbsentIDIsNotFound(t *testing.T) {
	router, token := newSQLiteRouter(t)

	for _, body := range []string{
		`{"nome":""}`,
		`{"email":"nope"}`,
		`{"dataNascimento":"ontem"}`,
		`{"nome":"Z"}`,
	} {
		t.Run(body, func(t *testing.T) {
			rr := serve(router, http.MethodPut, "/pacientes/999", body, token)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "Paciente não encontrado.", decodeMessage(t, rr).Mensagem)
		})
	}
}

func TestSQLiteFlow_UpdateExistingValidatesPayload(t *testing.T) {
	router, token := newSQLiteRouter(t)

	rr := serve(router, http.MethodPost, "/pacientes", `{"nome":"Ana","telefone":"1111"}`, token)
	require.Equal(t, http.StatusCreated, rr.Code)
	id := decodeObject(t, rr)["id"]
	require.Equal(t, 1.0, id)

	rr = serve(router, http.MethodPut, "/pacientes/1", `{"email":"nope"}`, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	msg := decodeMessage(t, rr)
	assert.Equal(t, "Erro ao atualizar paciente.", msg.Mensagem)
	assert.NotEmpty(t, msg.Erro)

	rr = serve(router, http.MethodPut, "/pacientes/1", `{"telefone":"2222"}`, token)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeObject(t, rr)
	assert.Equal(t, "Ana", body["nome"])
	assert.Equal(t, "2222", body["telefone"])

	rr = serve(router, http.MethodDelete, "/pacientes/1", "", token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(router, http.MethodPut, "/pacientes/1", `{"nome":""}`, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
