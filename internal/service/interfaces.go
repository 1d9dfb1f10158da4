package service

import (
	"context"

	"github.com/MKhiriev/go-clinic/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and verifies session tokens.
type AuthService interface {
	// RegisterUser hashes the password and stores a new account.
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	// Login checks credentials against the stored bcrypt hash.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PatientService manages patient records.
type PatientService interface {
	CreatePatient(ctx context.Context, profile models.Profile) (models.Patient, error)
	ListPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, id int64) (models.Patient, error)
	// UpdatePatient merges partial onto the stored profile.
	UpdatePatient(ctx context.Context, id int64, partial models.Profile) (models.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

// PatientServiceWrapper defines middleware composition for PatientService.
// Implementations wrap an existing PatientService to add behavior such as
// logging or validating.
type PatientServiceWrapper interface {
	Wrap(PatientService) PatientService // returns a decorated PatientService applying additional behavior
}
