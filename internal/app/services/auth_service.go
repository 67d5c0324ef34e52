package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/auth"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
)

// AuthService is the login gate. It resolves an email against the user
// collection by case-insensitive linear scan and accepts any password of at
// least four characters. This is a placeholder, not a security boundary: a
// real deployment would delegate credential verification to an identity
// provider behind the same interface.
type AuthService interface {
	// Login authenticates and returns the matched user, a session token with
	// its lifetime in seconds, and the role-default redirect view.
	Login(ctx context.Context, email, password string) (*models.User, string, int, models.View, error)
	// UserByID resolves a session's user id back to the current user record.
	UserByID(id string) (*models.User, error)
}

const minPasswordLength = 4

type authServiceImpl struct {
	reg    *registry.Registry
	jwt    *auth.JWTService
	logger zerolog.Logger
}

// NewAuthService creates the login gate over the shared registry.
func NewAuthService(reg *registry.Registry, jwt *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{reg: reg, jwt: jwt, logger: logger}
}

// Login implements the placeholder authentication algorithm.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.User, string, int, models.View, error) {
	needle := strings.ToLower(strings.TrimSpace(email))

	var found *models.User
	for _, u := range s.reg.Users() {
		if strings.ToLower(u.Email) == needle {
			found = &u
			break
		}
	}

	if found == nil {
		s.logger.Debug().Str("email", needle).Msg("Login rejected: unknown email")
		return nil, "", 0, "", apperrors.ErrUserNotFound
	}

	if len(password) < minPasswordLength {
		s.logger.Debug().Str("email", needle).Msg("Login rejected: password too short")
		return nil, "", 0, "", apperrors.ErrPasswordTooShort
	}

	token, expiresIn, err := s.jwt.GenerateToken(found)
	if err != nil {
		return nil, "", 0, "", err
	}

	redirect := models.DashboardFor(found.Role)
	s.logger.Info().Str("userId", found.ID).Str("role", string(found.Role)).Msg("User logged in")
	return found, token, expiresIn, redirect, nil
}

// UserByID finds the current record for a user id, or ErrUserNotFound when
// the account was deleted after the token was issued.
func (s *authServiceImpl) UserByID(id string) (*models.User, error) {
	for _, u := range s.reg.Users() {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}
