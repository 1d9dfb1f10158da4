package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-clinic/models"
)

// SQLite hands timestamps back as text when it cannot see the column type
// (RETURNING clauses, expressions), so both representations are accepted.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// timestamp is an sql.Scanner for TIMESTAMP columns of either dialect.
type timestamp struct {
	time.Time
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

// row is satisfied by both *sql.Row and *sql.Rows.
type row interface {
	Scan(dest ...any) error
}

func scanPatient(r row) (models.Patient, error) {
	var (
		patient   models.Patient
		document  []byte
		createdAt timestamp
		updatedAt timestamp
	)
	if err := r.Scan(&patient.ID, &document, &createdAt, &updatedAt); err != nil {
		return models.Patient{}, err
	}

	profile, err := decodeDocument(document)
	if err != nil {
		return models.Patient{}, err
	}

	patient.Profile = profile
	patient.CreatedAt = createdAt.Time
	patient.UpdatedAt = updatedAt.Time
	return patient, nil
}

func scanUser(r row) (models.User, error) {
	var (
		user      models.User
		createdAt timestamp
	)
	if err := r.Scan(&user.UserID, &user.Username, &user.PasswordHash, &createdAt); err != nil {
		return models.User{}, err
	}
	user.CreatedAt = createdAt.Time
	return user, nil
}

func encodeDocument(profile models.Profile) (string, error) {
	if profile == nil {
		profile = models.Profile{}
	}
	b, err := json.Marshal(profile.WithoutReserved())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingProfile, err)
	}
	return string(b), nil
}

func decodeDocument(document []byte) (models.Profile, error) {
	profile, err := models.DecodeProfile(bytes.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingProfile, err)
	}
	if profile == nil {
		profile = models.Profile{}
	}
	return profile, nil
}
