package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-clinic/internal/config"
	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/store"
	"github.com/MKhiriev/go-clinic/internal/utils"
	"github.com/MKhiriev/go-clinic/internal/validators"
	"github.com/MKhiriev/go-clinic/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes held by a UserRepository and
// issues HS256 session tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator rejects empty or oversized credentials before any lookup.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// now is the clock used for iat/exp at issuance and for expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// AuthServiceOption customises an AuthService at construction time.
type AuthServiceOption func(*authService)

// WithClock replaces the wall clock used for issuing and verifying tokens.
func WithClock(now func() time.Time) AuthServiceOption {
	return func(a *authService) {
		a.now = now
	}
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger, opts ...AuthServiceOption) AuthService {
	a := &authService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
	if a.tokenDuration <= 0 {
		a.tokenDuration = models.DefaultTokenDuration
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// RegisterUser creates a new account with a bcrypt hash of the password.
//
// Returns the persisted user or:
//   - a [ValidationError] if usuario or senha is empty or senha is too long.
//   - ErrUserAlreadyExists if the usuario is taken.
//   - a wrapped storage error otherwise.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, newValidationError(err)
	}

	hash, err := utils.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Str("usuario", credentials.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		return models.User{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("usuario", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing user.
//
// Unknown usuario and wrong senha both yield ErrInvalidCredentials. For an
// unknown usuario a throwaway bcrypt comparison is still performed.
// Any other lookup failure is returned wrapped and must be treated as an
// internal error.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Msg("login rejected by credentials validation")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		utils.BurnPasswordCheck(credentials.Password)
		log.Info().Str("usuario", credentials.Username).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("usuario", credentials.Username).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.CheckPassword(credentials.Password, foundUser.PasswordHash) {
		log.Info().
			Int64("id", foundUser.UserID).
			Str("usuario", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed token carrying {userId, usuario} that expires
// tokenDuration after issuance.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw token string.
//
// An expired token yields ErrTokenIsExpired; every other failure (bad
// signature, wrong algorithm, malformed input) yields ErrTokenIsInvalid.
// The referenced user is not looked up again.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.now)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
