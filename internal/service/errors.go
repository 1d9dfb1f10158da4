package service

import "errors"

var (
	// ErrValidation marks caller input that cannot be stored. The concrete
	// reason is carried by [ValidationError].
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials covers both an unknown usuario and a wrong senha.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrPatientNotFound   = errors.New("patient not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// ValidationError carries the reason a payload was rejected. It matches
// [ErrValidation] as well as the wrapped reason under errors.Is.
type ValidationError struct {
	Reason error
}

func newValidationError(reason error) error {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Reason}
}
