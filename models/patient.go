package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"time"
)

// Names of the system-managed patient attributes. They are owned by the
// server and are stripped from caller-supplied payloads.
const (
	PatientFieldID        = "id"
	PatientFieldCreatedAt = "createdAt"
	PatientFieldUpdatedAt = "updatedAt"
)

// Profile is the open set of caller-supplied patient attributes
// (nome, contact info, etc.).
type Profile map[string]any

// Patient is a persisted patient record.
//
// On the wire a patient is a flat JSON object: the profile attributes plus
// "id", "createdAt" and "updatedAt".
type Patient struct {
	// ID is the server-assigned identifier. It never changes and is never
	// reused after the record is deleted.
	ID int64

	// Profile holds the caller-supplied attributes.
	Profile Profile

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp of the last successful update.
	UpdatedAt time.Time
}

// MarshalJSON flattens the profile and the system-managed attributes into a
// single JSON object.
func (p Patient) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Profile)+3)
	maps.Copy(out, p.Profile)
	out[PatientFieldID] = p.ID
	out[PatientFieldCreatedAt] = p.CreatedAt
	out[PatientFieldUpdatedAt] = p.UpdatedAt

	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of [Patient.MarshalJSON].
func (p *Patient) UnmarshalJSON(b []byte) error {
	raw, err := DecodeProfile(bytes.NewReader(b))
	if err != nil {
		return err
	}

	var patient Patient
	if id, ok := raw[PatientFieldID].(json.Number); ok {
		if patient.ID, err = id.Int64(); err != nil {
			return fmt.Errorf("invalid patient id: %w", err)
		}
	}
	if patient.CreatedAt, err = parseTimestamp(raw[PatientFieldCreatedAt]); err != nil {
		return fmt.Errorf("invalid %s: %w", PatientFieldCreatedAt, err)
	}
	if patient.UpdatedAt, err = parseTimestamp(raw[PatientFieldUpdatedAt]); err != nil {
		return fmt.Errorf("invalid %s: %w", PatientFieldUpdatedAt, err)
	}
	patient.Profile = raw.WithoutReserved()

	*p = patient
	return nil
}

// DecodeProfile reads a single JSON object from r. Numbers are kept as
// [json.Number] so that stored values round-trip without precision loss.
//
// A JSON null decodes to a nil Profile without error; anything other than an
// object or null is an error.
func DecodeProfile(r io.Reader) (Profile, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var profile Profile
	if err := decoder.Decode(&profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// WithoutReserved returns a copy of the profile without the system-managed
// attributes.
func (p Profile) WithoutReserved() Profile {
	out := make(Profile, len(p))
	for k, v := range p {
		switch k {
		case PatientFieldID, PatientFieldCreatedAt, PatientFieldUpdatedAt:
			continue
		}
		out[k] = v
	}
	return out
}

// Merge returns a new profile with the attributes of partial applied on top
// of p. Attributes absent from partial are left untouched.
func (p Profile) Merge(partial Profile) Profile {
	out := make(Profile, len(p)+len(partial))
	maps.Copy(out, p)
	maps.Copy(out, partial)
	return out
}

func parseTimestamp(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
