// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the clinic HTTP API.
//
// [ClinicAdapter] hides the REST details (paths, bearer header, response
// envelopes) from callers such as cmd/client. Non-2xx answers are mapped to
// the sentinel errors in errors.go so that callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401); the server's
// mensagem/erro pair is kept in an [*APIError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-clinic/models"
)

// ClinicAdapter defines the operations of the clinic API.
type ClinicAdapter interface {
	// SetToken stores the bearer token attached to every protected request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Login exchanges credentials for a session token and stores it via
	// SetToken.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// CreatePatient registers a patient. No token is required.
	CreatePatient(ctx context.Context, profile models.Profile) (models.Patient, error)

	ListPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, id int64) (models.Patient, error)

	// UpdatePatient sends only the attributes to change.
	UpdatePatient(ctx context.Context, id int64, partial models.Profile) (models.Patient, error)

	DeletePatient(ctx context.Context, id int64) error
}
