package models

import "time"

// User represents a clinic staff account used for authentication.
// Accounts are provisioned out of band (see cmd/useradd); the API only reads them.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login name ("usuario" on the wire).
	Username string `json:"usuario"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "usuarios"
}

// Credentials is the body of a login request.
type Credentials struct {
	Username string `json:"usuario"`
	Password string `json:"senha"`
}
