package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/app/services"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/auth"
)

// Context keys set by JWTAuth.
const (
	ContextUserKey = "currentUser"
	ContextRoleKey = "role"
)

// AuthMiddleware resolves session tokens into the current user record. The
// token carries only the user id; the record itself is always re-read from
// the registry so edits and deletes take effect on the next request.
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	authService services.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		authService: authService,
	}
}

// JWTAuth validates the bearer token and loads the current user into the
// request context. Requests without a valid session are rejected.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, errDetail := m.resolve(c)
		if errDetail != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errDetail))
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextRoleKey, string(user.Role))
		c.Next()
	}
}

// OptionalJWT loads the current user when a valid token is present and lets
// the request through anonymously otherwise. Used by the view resolver.
func (m *AuthMiddleware) OptionalJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, errDetail := m.resolve(c); errDetail == nil {
			c.Set(ContextUserKey, user)
			c.Set(ContextRoleKey, string(user.Role))
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) (*models.User, *dto.ErrorDetail) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
			WithDetails("Authorization header missing")
	}

	tokenString, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		return nil, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
			WithDetails("Invalid token format")
	}

	claims, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		code := dto.ErrorCodeInvalidToken
		details := "Invalid token"
		if err == auth.ErrExpiredToken {
			code = dto.ErrorCodeExpiredToken
			details = "Token has expired"
		}
		return nil, dto.NewErrorDetail(code, "Authentication failed").WithDetails(details)
	}

	user, err := m.authService.UserByID(claims.UserID)
	if err != nil {
		// The account was removed after the token was issued.
		return nil, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
			WithDetails("Account no longer exists")
	}

	return user, nil
}

// RoleRequired checks that the authenticated user holds one of the given
// roles. JWTAuth must run first.
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("User information not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
			WithDetails("You don't have sufficient permissions for this operation").
			WithSeverity(dto.ErrorSeverityError)
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// CurrentUser returns the user loaded by JWTAuth or OptionalJWT, or nil for
// an anonymous request.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
