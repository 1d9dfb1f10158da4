package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyProfile     = errors.New("patient payload must be a JSON object")
	ErrEmptyFieldName   = errors.New("attribute names cannot be empty")
	ErrNameRequired     = errors.New("nome is required")
	ErrInvalidName      = errors.New("nome must be a non-empty string")
	ErrInvalidEmail     = errors.New("email must be a valid address")
	ErrInvalidBirthDate = errors.New("dataNascimento must be a date in YYYY-MM-DD format")
	ErrInvalidPatientID = errors.New("invalid patient id")

	ErrEmptyUsername   = errors.New("usuario is required")
	ErrEmptyPassword   = errors.New("senha is required")
	ErrPasswordTooLong = errors.New("senha must be at most 72 bytes")
)
