package service

import (
	"github.com/MKhiriev/go-clinic/internal/config"
	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/store"
)

type Services struct {
	AuthService    AuthService
	PatientService PatientService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	patientService := NewPatientService(storages.PatientRepository, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		PatientService: NewPatientValidationService().Wrap(patientService),
	}
}
