package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-clinic/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by GenerateJWTToken when it is called
// without a sign key or with a non-positive duration.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken creates a signed HMAC-SHA256 session token for user.
//
// The payload is {userId, usuario, iat, exp} where iat is now and
// exp is now + tokenDuration.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(user, 20*time.Minute, "secret", time.Now())
func GenerateJWTToken(user models.User, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := models.Claims{
		UserID:   user.UserID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies the signature and expiry of tokenString
// and returns its decoded claims.
//
// Only HS256 is accepted. now is used as the verification clock; errors from
// the jwt library are wrapped, so callers can match [jwt.ErrTokenExpired]
// with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey string, now func() time.Time) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{Claims: *claims, SignedString: tokenString}, nil
}
