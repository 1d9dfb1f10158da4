// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request has no "Authorization" header or an empty one.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but has no second space-separated part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the second part of the "Authorization"
	// header is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// errInvalidPatientID is returned for path ids that are not positive integers.
	errInvalidPatientID = errors.New("invalid patient id in path")
)
