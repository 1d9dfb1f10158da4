package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrEmptyAddress        = errors.New("empty address")
)

// APIError is a non-2xx answer of the clinic API. It matches the sentinel
// for its status class under errors.Is.
type APIError struct {
	StatusCode int
	Mensagem   string
	Erro       string

	kind error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s (http %d)", e.kind, e.StatusCode)
	if e.Mensagem != "" {
		msg += ": " + e.Mensagem
	}
	if e.Erro != "" {
		msg += ": " + e.Erro
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.kind
}
