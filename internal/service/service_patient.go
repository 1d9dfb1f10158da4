// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/store"
	"github.com/MKhiriev/go-clinic/models"
)

// patientService is the storage-backed PatientService. Input validation is
// layered on top by [PatientValidationService].
type patientService struct {
	patientRepository store.PatientRepository
	logger            *logger.Logger
}

func NewPatientService(patientRepository store.PatientRepository, logger *logger.Logger) PatientService {
	return &patientService{
		patientRepository: patientRepository,
		logger:            logger,
	}
}

func (s *patientService) CreatePatient(ctx context.Context, profile models.Profile) (models.Patient, error) {
	patient, err := s.patientRepository.CreatePatient(ctx, profile.WithoutReserved())
	if err != nil {
		return models.Patient{}, mapStoreError(err, "error creating patient")
	}

	logger.FromContext(ctx).Info().Int64("patient_id", patient.ID).Msg("patient created")
	return patient, nil
}

func (s *patientService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	patients, err := s.patientRepository.ListPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing patients: %w", err)
	}

	return patients, nil
}

func (s *patientService) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	patient, err := s.patientRepository.GetPatient(ctx, id)
	if err != nil {
		return models.Patient{}, mapStoreError(err, "error getting patient")
	}

	return patient, nil
}

// UpdatePatient loads the stored record, applies partial on top of its
// profile and writes the result back. Attributes absent from partial are left
// untouched. Concurrent updates of the same id are last-write-wins.
func (s *patientService) UpdatePatient(ctx context.Context, id int64, partial models.Profile) (models.Patient, error) {
	stored, err := s.patientRepository.GetPatient(ctx, id)
	if err != nil {
		return models.Patient{}, mapStoreError(err, "error loading patient for update")
	}

	stored.Profile = stored.Profile.Merge(partial.WithoutReserved())

	updated, err := s.patientRepository.UpdatePatient(ctx, stored)
	if err != nil {
		return models.Patient{}, mapStoreError(err, "error updating patient")
	}

	logger.FromContext(ctx).Info().Int64("patient_id", id).Msg("patient updated")
	return updated, nil
}

func (s *patientService) DeletePatient(ctx context.Context, id int64) error {
	if err := s.patientRepository.DeletePatient(ctx, id); err != nil {
		return mapStoreError(err, "error deleting patient")
	}

	logger.FromContext(ctx).Info().Int64("patient_id", id).Msg("patient deleted")
	return nil
}

// mapStoreError turns store sentinels into service-level errors. Anything
// unrecognised is wrapped with msg.
func mapStoreError(err error, msg string) error {
	switch {
	case errors.Is(err, store.ErrPatientNotFound):
		return ErrPatientNotFound
	case errors.Is(err, store.ErrConstraintViolation):
		return newValidationError(err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
