// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/models"
)

const (
	insertPatientSQL  = `INSERT INTO pacientes (dados) VALUES ($1) RETURNING id, dados, created_at, updated_at`
	selectPatientsSQL = `SELECT id, dados, created_at, updated_at FROM pacientes ORDER BY id`
	selectPatientSQL  = `SELECT id, dados, created_at, updated_at FROM pacientes WHERE id = $1`
	updatePatientSQL  = `UPDATE pacientes SET dados = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 RETURNING id, dados, created_at, updated_at`
	deletePatientSQL  = `DELETE FROM pacientes WHERE id = $1`
)

func newTestPatientRepo(t *testing.T) (*patientRepository, sqlmock.Sqlmock) {
	db, mock := newTestPostgresDB(t)
	return &patientRepository{db: db, logger: logger.Nop()}, mock
}

func patientRows() *sqlmock.Rows {
	return sqlmock.NewRows(patientColumns)
}

func TestCreatePatient_Success(t *testing.T) {
	repo, mock := newTestPatientRepo(t)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(insertPatientSQL)).
		WithArgs(`{"idade":30,"nome":"Ana"}`).
		WillReturnRows(patientRows().AddRow(int64(1), []byte(`{"idade":30,"nome":"Ana"}`), now, now))

	patient, err := repo.CreatePatient(context.Background(), models.Profile{"nome": "Ana", "idade": 30})

	require.NoError(t, err)
	assert.Equal(t, int64(1), patient.ID)
	assert.Equal(t, "Ana", patient.Profile["nome"])
	assert.Equal(t, json.Number("30"), patient.Profile["idade"])
	assert.Equal(t, now, patient.CreatedAt)
	assert.Equal(t, now, patient.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePatient_StripsReservedKeys(t *testing.T) {
	repo, mock := newTestPatientRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(insertPatientSQL)).
		WithArgs(`{"nome":"Ana"}`).
		WillReturnRows(patientRows().AddRow(int64(2), `{"nome":"Ana"}`, now, now))

	patient, err := repo.CreatePatient(context.Background(), models.Profile{
		"nome":      "Ana",
		"id":        99,
		"createdAt": "yesterday",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), patient.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePatient_CheckViolation(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertPatientSQL)).
		WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.CreatePatient(context.Background(), models.Profile{"nome": "Ana"})

	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestCreatePatient_DBError(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertPatientSQL)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreatePatient(context.Background(), models.Profile{"nome": "Ana"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrConstraintViolation)
}

func TestListPatients_Success(t *testing.T) {
	repo, mock := newTestPatientRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(selectPatientsSQL)).
		WillReturnRows(patientRows().
			AddRow(int64(1), `{"nome":"Ana"}`, now, now).
			AddRow(int64(3), `{"nome":"Bruno","telefone":"123"}`, now, now))

	patients, err := repo.ListPatients(context.Background())

	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, int64(1), patients[0].ID)
	assert.Equal(t, int64(3), patients[1].ID)
	assert.Equal(t, "123", patients[1].Profile["telefone"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPatients_Empty(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPatientsSQL)).
		WillReturnRows(patientRows())

	patients, err := repo.ListPatients(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, patients)
	assert.Empty(t, patients)
}

func TestListPatients_QueryError(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPatientsSQL)).
		WillReturnError(errors.New("boom"))

	_, err := repo.ListPatients(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListPatients_CorruptDocument(t *testing.T) {
	repo, mock := newTestPatientRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(selectPatientsSQL)).
		WillReturnRows(patientRows().AddRow(int64(1), `not json`, now, now))

	_, err := repo.ListPatients(context.Background())

	assert.ErrorIs(t, err, ErrScanningRows)
	assert.ErrorIs(t, err, ErrEncodingProfile)
}

func TestListPatients_RowError(t *testing.T) {
	repo, mock := newTestPatientRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(selectPatientsSQL)).
		WillReturnRows(patientRows().
			AddRow(int64(1), `{}`, now, now).
			RowError(0, errors.New("network hiccup")))

	_, err := repo.ListPatients(context.Background())

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestGetPatient_Success(t *testing.T) {
	repo, mock := newTestPatientRepo(t)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(selectPatientSQL)).
		WithArgs(int64(5)).
		WillReturnRows(patientRows().AddRow(int64(5), `{"nome":"Carla"}`, created, updated))

	patient, err := repo.GetPatient(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), patient.ID)
	assert.Equal(t, models.Profile{"nome": "Carla"}, patient.Profile)
	assert.Equal(t, updated, patient.UpdatedAt)
}

func TestGetPatient_TextTimestamps(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPatientSQL)).
		WithArgs(int64(5)).
		WillReturnRows(patientRows().AddRow(int64(5), `{}`, "2026-01-01 10:20:30", "2026-01-01T10:20:31Z"))

	patient, err := repo.GetPatient(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 10, 20, 30, 0, time.UTC), patient.CreatedAt)
	assert.Equal(t, time.Date(2026, 1, 1, 10, 20, 31, 0, time.UTC), patient.UpdatedAt)
}

func TestGetPatient_NotFound(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPatientSQL)).
		WithArgs(int64(404)).
		WillReturnRows(patientRows())

	_, err := repo.GetPatient(context.Background(), 404)

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestGetPatient_DBError(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPatientSQL)).
		WillReturnError(errors.New("boom"))

	_, err := repo.GetPatient(context.Background(), 1)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPatientNotFound)
}

func TestUpdatePatient_Success(t *testing.T) {
	repo, mock := newTestPatientRepo(t)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(updatePatientSQL)).
		WithArgs(`{"nome":"Ana","telefone":"999"}`, int64(1)).
		WillReturnRows(patientRows().AddRow(int64(1), `{"nome":"Ana","telefone":"999"}`, created, updated))

	patient, err := repo.UpdatePatient(context.Background(), models.Patient{
		ID:      1,
		Profile: models.Profile{"nome": "Ana", "telefone": "999"},
	})

	require.NoError(t, err)
	assert.Equal(t, created, patient.CreatedAt)
	assert.Equal(t, updated, patient.UpdatedAt)
	assert.Equal(t, "999", patient.Profile["telefone"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePatient_NotFound(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(updatePatientSQL)).
		WithArgs(sqlmock.AnyArg(), int64(9)).
		WillReturnRows(patientRows())

	_, err := repo.UpdatePatient(context.Background(), models.Patient{ID: 9, Profile: models.Profile{}})

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestUpdatePatient_NotNullViolation(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(updatePatientSQL)).
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.UpdatePatient(context.Background(), models.Patient{ID: 1})

	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestDeletePatient_Success(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deletePatientSQL)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeletePatient(context.Background(), 3)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePatient_Twice(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deletePatientSQL)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deletePatientSQL)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeletePatient(context.Background(), 3))
	assert.ErrorIs(t, repo.DeletePatient(context.Background(), 3), ErrPatientNotFound)
}

func TestDeletePatient_ExecError(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deletePatientSQL)).
		WillReturnError(errors.New("boom"))

	err := repo.DeletePatient(context.Background(), 3)

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestDeletePatient_RowsAffectedError(t *testing.T) {
	repo, mock := newTestPatientRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deletePatientSQL)).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("unknown")))

	err := repo.DeletePatient(context.Background(), 3)

	assert.ErrorIs(t, err, ErrExecutingStatement)
}
