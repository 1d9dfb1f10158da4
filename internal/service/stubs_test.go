package service

import (
	"context"

	"github.com/MKhiriev/go-clinic/models"
)

// stubs rather than internal/mock: that package imports service.

type stubUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, username string) (models.User, error)
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return user, nil
}

func (s *stubUserRepository) FindUserByLogin(ctx context.Context, username string) (models.User, error) {
	if s.findFn != nil {
		return s.findFn(ctx, username)
	}
	return models.User{}, nil
}

type stubPatientRepository struct {
	createFn func(ctx context.Context, profile models.Profile) (models.Patient, error)
	listFn   func(ctx context.Context) ([]models.Patient, error)
	getFn    func(ctx context.Context, id int64) (models.Patient, error)
	updateFn func(ctx context.Context, patient models.Patient) (models.Patient, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubPatientRepository) CreatePatient(ctx context.Context, profile models.Profile) (models.Patient, error) {
	if s.createFn != nil {
		return s.createFn(ctx, profile)
	}
	return models.Patient{ID: 1, Profile: profile}, nil
}

func (s *stubPatientRepository) ListPatients(ctx context.Context) ([]models.Patient, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubPatientRepository) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return models.Patient{ID: id}, nil
}

func (s *stubPatientRepository) UpdatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, patient)
	}
	return patient, nil
}

func (s *stubPatientRepository) DeletePatient(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

// recordingPatientService records which calls reached it through a wrapper.
type recordingPatientService struct {
	calls   []string
	missing map[int64]bool
}

func (r *recordingPatientService) CreatePatient(_ context.Context, profile models.Profile) (models.Patient, error) {
	r.calls = append(r.calls, "create")
	return models.Patient{ID: 1, Profile: profile}, nil
}

func (r *recordingPatientService) ListPatients(context.Context) ([]models.Patient, error) {
	r.calls = append(r.calls, "list")
	return []models.Patient{}, nil
}

func (r *recordingPatientService) GetPatient(_ context.Context, id int64) (models.Patient, error) {
	r.calls = append(r.calls, "get")
	if r.missing[id] {
		return models.Patient{}, ErrPatientNotFound
	}
	return models.Patient{ID: id, Profile: models.Profile{"nome": "Ana"}}, nil
}

func (r *recordingPatientService) UpdatePatient(_ context.Context, id int64, partial models.Profile) (models.Patient, error) {
	r.calls = append(r.calls, "update")
	return models.Patient{ID: id, Profile: partial}, nil
}

func (r *recordingPatientService) DeletePatient(context.Context, int64) error {
	r.calls = append(r.calls, "delete")
	return nil
}
