package store

import (
	"context"

	"github.com/MKhiriev/go-clinic/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and writes the usuarios table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, username string) (models.User, error)
}

// PatientRepository reads and writes the pacientes table.
type PatientRepository interface {
	CreatePatient(ctx context.Context, profile models.Profile) (models.Patient, error)
	ListPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, id int64) (models.Patient, error)
	UpdatePatient(ctx context.Context, patient models.Patient) (models.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}
