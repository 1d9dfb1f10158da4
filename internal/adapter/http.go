package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/utils"
	"github.com/MKhiriev/go-clinic/models"
)

type httpClinicAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPClinicAdapter constructs the resty-backed [ClinicAdapter].
// address may omit the scheme, in which case http is assumed.
func NewHTTPClinicAdapter(address string, timeout time.Duration, logger *logger.Logger) (ClinicAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpClinicAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpClinicAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpClinicAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ClinicAdapter]. It POSTs the credentials to /login and
// stores the token from the response body.
func (h *httpClinicAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("usuario", credentials.Username).Msg("logged in")
	return result.Token, nil
}

func (h *httpClinicAdapter) CreatePatient(ctx context.Context, profile models.Profile) (models.Patient, error) {
	var patient models.Patient

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		SetResult(&patient).
		Post("/pacientes")
	if err != nil {
		return models.Patient{}, fmt.Errorf("create patient request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Patient{}, err
	}

	return patient, nil
}

func (h *httpClinicAdapter) ListPatients(ctx context.Context) ([]models.Patient, error) {
	var result models.PatientListResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/pacientes")
	if err != nil {
		return nil, fmt.Errorf("list patients request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Pacientes, nil
}

func (h *httpClinicAdapter) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	var patient models.Patient

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&patient).
		Get("/pacientes/{id}")
	if err != nil {
		return models.Patient{}, fmt.Errorf("get patient request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Patient{}, err
	}

	return patient, nil
}

func (h *httpClinicAdapter) UpdatePatient(ctx context.Context, id int64, partial models.Profile) (models.Patient, error) {
	var patient models.Patient

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(partial).
		SetResult(&patient).
		Put("/pacientes/{id}")
	if err != nil {
		return models.Patient{}, fmt.Errorf("update patient request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Patient{}, err
	}

	return patient, nil
}

func (h *httpClinicAdapter) DeletePatient(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/pacientes/{id}")
	if err != nil {
		return fmt.Errorf("delete patient request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpClinicAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
