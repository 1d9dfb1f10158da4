package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-clinic/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var body models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Mensagem = body.Mensagem
		apiErr.Erro = body.Erro
	} else {
		apiErr.Mensagem = strings.TrimSpace(string(resp.Body()))
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusInternalServerError:
		apiErr.kind = ErrInternalServerError
	default:
		apiErr.kind = ErrUnexpectedStatus
		if apiErr.Mensagem == "" {
			apiErr.Mensagem = http.StatusText(resp.StatusCode())
		}
	}

	return apiErr
}
