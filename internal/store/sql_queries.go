package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable    = "usuarios"
	patientsTable = "pacientes"
)

var (
	userColumns    = []string{"id", "usuario", "senha", "created_at"}
	patientColumns = []string{"id", "dados", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, username, passwordHash string) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns("usuario", "senha").
		Values(username, passwordHash).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserByLoginQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"usuario": username}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertPatientQuery(b sq.StatementBuilderType, document string) (string, []any, error) {
	query, args, err := b.
		Insert(patientsTable).
		Columns("dados").
		Values(document).
		Suffix(returning(patientColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectPatientsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(patientColumns...).
		From(patientsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectPatientQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Select(patientColumns...).
		From(patientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdatePatientQuery(b sq.StatementBuilderType, id int64, document string) (string, []any, error) {
	query, args, err := b.
		Update(patientsTable).
		Set("dados", document).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(patientColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeletePatientQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Delete(patientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
