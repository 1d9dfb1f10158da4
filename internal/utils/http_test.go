package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-clinic/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := models.MessageResponse{Mensagem: "ok"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type '%s'", ct)
	}
	if w.Body.String() != `{"mensagem":"ok"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.MessageResponse{Mensagem: "Paciente não encontrado."}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_ErroFieldOmittedWhenEmpty(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.MessageResponse{Mensagem: "x", Erro: "reason"}, http.StatusBadRequest)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["erro"] != "reason" {
		t.Errorf("expected erro 'reason', got '%s'", body["erro"])
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteText(w, "Seja bem-vindo a nossa API de clínica!", http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != "Seja bem-vindo a nossa API de clínica!" {
		t.Errorf("unexpected body '%s'", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("unexpected Content-Type '%s'", ct)
	}
}
