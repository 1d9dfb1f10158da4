package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/service"
	"github.com/MKhiriev/go-clinic/internal/utils"
	"github.com/MKhiriev/go-clinic/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrTokenIsExpired:     http.StatusUnauthorized,
	service.ErrTokenIsInvalid:     http.StatusUnauthorized,
	service.ErrPatientNotFound:    http.StatusNotFound,
	service.ErrUserAlreadyExists:  http.StatusConflict,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	errInvalidPatientID:           http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writePatientError answers a failed patient operation. Internal failures are
// logged and answered without detail.
func writePatientError(w http.ResponseWriter, r *http.Request, err error, messages operationMessages) {
	log := logger.FromRequest(r)

	switch status := statusFromError(err); status {
	case http.StatusBadRequest:
		log.Info().Err(err).Msg("patient payload rejected")
		utils.WriteJSON(w, models.MessageResponse{Mensagem: messages.invalid, Erro: validationReason(err)}, status)
	case http.StatusNotFound:
		utils.WriteJSON(w, models.MessageResponse{Mensagem: msgPatientNotFound}, status)
	default:
		log.Err(err).Msg("patient operation failed")
		utils.WriteJSON(w, models.MessageResponse{Mensagem: messages.internal}, http.StatusInternalServerError)
	}
}

func validationReason(err error) string {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	return err.Error()
}
