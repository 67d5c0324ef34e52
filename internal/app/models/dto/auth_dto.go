package dto

import "github.com/erasmusedu/erasmus-portal/internal/app/models"

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@erasmus.com"`
	Password string `json:"password" binding:"required" example:"1234"`
}

// LoginResponse carries the session token and the role-default redirect view.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expiresIn" example:"43200"`
	Redirect  models.View `json:"redirect" example:"admin"`
	User      models.User `json:"user"`
}

// LogoutResponse resets the client back to the public site.
type LogoutResponse struct {
	Redirect models.View `json:"redirect" example:"home"`
}
