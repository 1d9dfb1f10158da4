package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenDuration is how long a session token stays valid after issuance.
const DefaultTokenDuration = 20 * time.Minute

// Claims is the payload of a session token: {userId, usuario, iat, exp}.
//
// The claims are fixed at issuance; the server never re-issues or refreshes a token.
type Claims struct {
	// UserID is the identifier of the authenticated user.
	UserID int64 `json:"userId"`

	// Username is the login name of the authenticated user.
	Username string `json:"usuario"`

	// RegisteredClaims carries iat and exp.
	jwt.RegisteredClaims
}

// Identity is the decoded caller identity made available to protected handlers.
type Identity struct {
	UserID   int64  `json:"userId"`
	Username string `json:"usuario"`
}

// Token wraps a signed session token together with its decoded claims.
type Token struct {
	// Claims holds the decoded payload of the token.
	Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// Identity returns the caller identity carried by the token.
func (t Token) Identity() Identity {
	return Identity{UserID: t.UserID, Username: t.Username}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
