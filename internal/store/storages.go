package store

import "github.com/MKhiriev/go-clinic/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	PatientRepository PatientRepository
}

// NewStorages builds all repositories on top of a single connection pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PatientRepository: NewPatientRepository(db, log),
	}
}
