package validators

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/go-clinic/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldKeys checks that every attribute name is non-empty.
	FieldKeys = "keys"

	// FieldName targets the required "nome" attribute.
	FieldName = "nome"

	// FieldEmail targets the optional "email" attribute.
	FieldEmail = "email"

	// FieldBirthDate targets the optional "dataNascimento" attribute.
	FieldBirthDate = "dataNascimento"

	// FieldPatientID targets the identifier of a stored patient.
	FieldPatientID = "id"
)

const birthDateLayout = time.DateOnly

// PatientValidator checks patient profiles before they reach storage.
//
// Profiles are open: unknown attributes are accepted as-is. Only the
// attributes named by the Field* constants carry rules.
type PatientValidator struct {
}

func NewPatientValidator() Validator {
	return &PatientValidator{}
}

func (v *PatientValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Profile:
		return v.validateProfile(ctx, value, fields...)
	case *models.Profile:
		if value == nil {
			return ErrEmptyProfile
		}
		return v.validateProfile(ctx, *value, fields...)

	case models.Patient:
		return v.validatePatient(ctx, value, fields...)
	case *models.Patient:
		if value == nil {
			return ErrEmptyProfile
		}
		return v.validatePatient(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PatientValidator) validateProfile(_ context.Context, profile models.Profile, fields ...string) error {
	if profile == nil {
		return ErrEmptyProfile
	}

	if len(fields) == 0 {
		fields = []string{FieldKeys, FieldName, FieldEmail, FieldBirthDate}
	}

	for _, f := range fields {
		switch f {
		case FieldKeys:
			for k := range profile {
				if strings.TrimSpace(k) == "" {
					return ErrEmptyFieldName
				}
			}
		case FieldName:
			raw, ok := profile[FieldName]
			if !ok || raw == nil {
				return ErrNameRequired
			}
			name, ok := raw.(string)
			if !ok || strings.TrimSpace(name) == "" {
				return ErrInvalidName
			}
		case FieldEmail:
			raw, ok := profile[FieldEmail]
			if !ok || raw == nil {
				continue
			}
			email, ok := raw.(string)
			if !ok {
				return ErrInvalidEmail
			}
			if _, err := mail.ParseAddress(email); err != nil {
				return ErrInvalidEmail
			}
		case FieldBirthDate:
			raw, ok := profile[FieldBirthDate]
			if !ok || raw == nil {
				continue
			}
			date, ok := raw.(string)
			if !ok {
				return ErrInvalidBirthDate
			}
			if _, err := time.Parse(birthDateLayout, date); err != nil {
				return ErrInvalidBirthDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PatientValidator) validatePatient(ctx context.Context, patient models.Patient, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatientID, FieldKeys, FieldName, FieldEmail, FieldBirthDate}
	}

	profileFields := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == FieldPatientID {
			if patient.ID <= 0 {
				return ErrInvalidPatientID
			}
			continue
		}
		profileFields = append(profileFields, f)
	}

	if len(profileFields) == 0 {
		return nil
	}

	return v.validateProfile(ctx, patient.Profile, profileFields...)
}
