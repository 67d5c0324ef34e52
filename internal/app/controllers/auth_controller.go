package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/app/services"
	"github.com/erasmusedu/erasmus-portal/internal/middleware"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
)

// AuthController handles login and logout
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates a user
// @Summary Log in
// @Description Resolves the email against the user directory and issues a session token with the role-default redirect
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Logged in successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unknown email or password too short"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, token, expiresIn, redirect, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		// Both gate failures answer 401. The distinct codes let the client
		// show the right form message.
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUserNotFound, "Usuário não encontrado")
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		case errors.Is(err, apperrors.ErrPasswordTooShort):
			errorDetail := dto.NewErrorDetail(dto.ErrorCodePasswordTooShort, "Senha incorreta")
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		default:
			middleware.HandleAPIError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Redirect:  redirect,
		User:      *user,
	}))
}

// Logout ends the session
// @Summary Log out
// @Description Sessions are stateless; logout only tells the client to drop the token and return to the public site
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.LogoutResponse} "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LogoutResponse{
		Redirect: models.ViewHome,
	}))
}
