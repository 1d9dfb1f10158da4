package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/service"
	"github.com/MKhiriev/go-clinic/internal/utils"
	"github.com/MKhiriev/go-clinic/models"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, msgWelcome, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Mensagem: msgBadRequest}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			h.observeLogin(loginInvalidCredentials)
			log.Info().Str("usuario", credentials.Username).Msg("invalid login/password")
			utils.WriteJSON(w, models.MessageResponse{Mensagem: msgInvalidCredentials}, http.StatusUnauthorized)
		default:
			h.observeLogin(loginFailed)
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.MessageResponse{Mensagem: msgInternalError}, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.observeLogin(loginFailed)
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.MessageResponse{Mensagem: msgInternalError}, http.StatusInternalServerError)
		return
	}

	h.observeLogin(loginSucceeded)
	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{Mensagem: msgLoginSuccess, Token: token.String()}, http.StatusOK)
}
