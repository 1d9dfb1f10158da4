package validators

import (
	"context"

	"github.com/MKhiriev/go-clinic/models"
)

const (
	FieldUsername = "usuario"
	FieldPassword = "senha"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

// CredentialsValidator checks login and provisioning input.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var credentials models.Credentials
	switch value := obj.(type) {
	case models.Credentials:
		credentials = value
	case *models.Credentials:
		if value == nil {
			return ErrEmptyUsername
		}
		credentials = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if credentials.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
			if len(credentials.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
