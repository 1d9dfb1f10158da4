package service

import (
	"context"

	"github.com/MKhiriev/go-clinic/internal/validators"
	"github.com/MKhiriev/go-clinic/models"
)

// PatientValidationService rejects bad input before it reaches the wrapped
// PatientService.
type PatientValidationService struct {
	inner     PatientService
	validator validators.Validator
}

func NewPatientValidationService() PatientServiceWrapper {
	return &PatientValidationService{
		validator: validators.NewPatientValidator(),
	}
}

func (v *PatientValidationService) CreatePatient(ctx context.Context, profile models.Profile) (models.Patient, error) {
	if err := v.validator.Validate(ctx, profile.WithoutReserved()); err != nil {
		return models.Patient{}, newValidationError(err)
	}

	return v.inner.CreatePatient(ctx, profile)
}

func (v *PatientValidationService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return v.inner.ListPatients(ctx)
}

func (v *PatientValidationService) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	if id <= 0 {
		return models.Patient{}, ErrPatientNotFound
	}

	return v.inner.GetPatient(ctx, id)
}

// UpdatePatient resolves the stored record first, so an absent id is
// reported as not found whatever the payload holds. Only the attributes
// present in partial are checked against the merged record: the stored
// attributes already passed validation.
func (v *PatientValidationService) UpdatePatient(ctx context.Context, id int64, partial models.Profile) (models.Patient, error) {
	if id <= 0 {
		return models.Patient{}, ErrPatientNotFound
	}

	stored, err := v.inner.GetPatient(ctx, id)
	if err != nil {
		return models.Patient{}, err
	}

	partial = partial.WithoutReserved()

	fields := []string{validators.FieldPatientID, validators.FieldKeys}
	for _, f := range []string{validators.FieldName, validators.FieldEmail, validators.FieldBirthDate} {
		if _, ok := partial[f]; ok {
			fields = append(fields, f)
		}
	}

	merged := models.Patient{ID: stored.ID, Profile: stored.Profile.Merge(partial)}
	if err = v.validator.Validate(ctx, merged, fields...); err != nil {
		return models.Patient{}, newValidationError(err)
	}

	return v.inner.UpdatePatient(ctx, id, partial)
}

func (v *PatientValidationService) DeletePatient(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrPatientNotFound
	}

	return v.inner.DeletePatient(ctx, id)
}

func (v *PatientValidationService) Wrap(wrapped PatientService) PatientService {
	v.inner = wrapped
	return v
}
