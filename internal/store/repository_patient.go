// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/models"
)

// patientRepository is the SQL implementation of [PatientRepository]. The
// open profile lives in the "dados" column: JSONB on PostgreSQL and JSON text
// on SQLite. Ids come from an identity column and are never reused.
type patientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPatientRepository constructs a [PatientRepository] on top of db.
func NewPatientRepository(db *DB, logger *logger.Logger) PatientRepository {
	logger.Debug().Msg("creating patient repository")
	return &patientRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePatient inserts profile and returns the stored record with its
// server-assigned id and timestamps.
//
// A CHECK or NOT NULL rejection is reported as [ErrConstraintViolation].
func (r *patientRepository) CreatePatient(ctx context.Context, profile models.Profile) (models.Patient, error) {
	log := logger.FromContext(ctx)

	document, err := encodeDocument(profile)
	if err != nil {
		return models.Patient{}, err
	}

	query, args, err := buildInsertPatientQuery(r.db.builder(), document)
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.CreatePatient").Msg("error building query")
		return models.Patient{}, err
	}

	patient, err := scanPatient(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.CreatePatient").Msg("error inserting patient")
		return models.Patient{}, r.wrap(err, ErrExecutingStatement)
	}

	log.Debug().Str("func", "*patientRepository.CreatePatient").Int64("patient_id", patient.ID).Msg("patient created")
	return patient, nil
}

// ListPatients returns every stored patient ordered by id. An empty table
// yields an empty, non-nil slice.
func (r *patientRepository) ListPatients(ctx context.Context) ([]models.Patient, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPatientsQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.ListPatients").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.ListPatients").Msg("error selecting patients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			log.Err(err).Str("func", "*patientRepository.ListPatients").Msg("error scanning patient row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		patients = append(patients, patient)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*patientRepository.ListPatients").Msg("error iterating patient rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return patients, nil
}

// GetPatient returns the patient with the given id or [ErrPatientNotFound].
func (r *patientRepository) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPatientQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.GetPatient").Msg("error building query")
		return models.Patient{}, err
	}

	patient, err := scanPatient(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Patient{}, ErrPatientNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.GetPatient").Int64("patient_id", id).Msg("error selecting patient")
		return models.Patient{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return patient, nil
}

// UpdatePatient replaces the stored profile of patient.ID with
// patient.Profile and refreshes updated_at. The id and created_at columns
// are never written.
func (r *patientRepository) UpdatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	document, err := encodeDocument(patient.Profile)
	if err != nil {
		return models.Patient{}, err
	}

	query, args, err := buildUpdatePatientQuery(r.db.builder(), patient.ID, document)
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.UpdatePatient").Msg("error building query")
		return models.Patient{}, err
	}

	updated, err := scanPatient(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Patient{}, ErrPatientNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.UpdatePatient").Int64("patient_id", patient.ID).Msg("error updating patient")
		return models.Patient{}, r.wrap(err, ErrExecutingStatement)
	}

	return updated, nil
}

// DeletePatient removes the patient with the given id. Deleting an id that
// is not present returns [ErrPatientNotFound].
func (r *patientRepository) DeletePatient(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePatientQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.DeletePatient").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.DeletePatient").Int64("patient_id", id).Msg("error deleting patient")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	return nil
}

// wrap maps constraint failures to [ErrConstraintViolation] and everything
// else to fallback.
func (r *patientRepository) wrap(err error, fallback error) error {
	if r.db.classify(err) == ConstraintViolation {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}
	return fmt.Errorf("%w: %w", fallback, err)
}
