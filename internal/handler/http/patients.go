package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/utils"
	"github.com/MKhiriev/go-clinic/models"
)

func (h *Handler) createPatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	profile, err := models.DecodeProfile(r.Body)
	if err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Mensagem: msgCreateFailed, Erro: err.Error()}, http.StatusBadRequest)
		return
	}

	patient, err := h.services.PatientService.CreatePatient(r.Context(), profile)
	if err != nil {
		writePatientError(w, r, err, createMessages)
		return
	}

	utils.WriteJSON(w, patient, http.StatusCreated)
}

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		logger.FromRequest(r).Debug().
			Int64("user_id", identity.UserID).
			Str("usuario", identity.Username).
			Msg("patient list requested")
	}

	patients, err := h.services.PatientService.ListPatients(r.Context())
	if err != nil {
		writePatientError(w, r, err, listMessages)
		return
	}
	if patients == nil {
		patients = []models.Patient{}
	}

	utils.WriteJSON(w, models.PatientListResponse{Mensagem: msgPatientList, Pacientes: patients}, http.StatusOK)
}

func (h *Handler) getPatient(w http.ResponseWriter, r *http.Request) {
	id, err := patientIDFromPath(r)
	if err != nil {
		writePatientError(w, r, err, getMessages)
		return
	}

	patient, err := h.services.PatientService.GetPatient(r.Context(), id)
	if err != nil {
		writePatientError(w, r, err, getMessages)
		return
	}

	utils.WriteJSON(w, patient, http.StatusOK)
}

func (h *Handler) updatePatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := patientIDFromPath(r)
	if err != nil {
		writePatientError(w, r, err, updateMessages)
		return
	}

	partial, err := models.DecodeProfile(r.Body)
	if err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Mensagem: msgUpdateFailed, Erro: err.Error()}, http.StatusBadRequest)
		return
	}

	patient, err := h.services.PatientService.UpdatePatient(r.Context(), id, partial)
	if err != nil {
		writePatientError(w, r, err, updateMessages)
		return
	}

	utils.WriteJSON(w, patient, http.StatusOK)
}

func (h *Handler) deletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := patientIDFromPath(r)
	if err != nil {
		writePatientError(w, r, err, deleteMessages)
		return
	}

	if err = h.services.PatientService.DeletePatient(r.Context(), id); err != nil {
		writePatientError(w, r, err, deleteMessages)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// patientIDFromPath parses the {id} URL parameter. Anything that is not a
// positive integer cannot name a stored patient.
func patientIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidPatientID
	}
	return id, nil
}
