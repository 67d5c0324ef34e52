package dto

import "github.com/erasmusedu/erasmus-portal/internal/app/models"

// ResolveViewResponse is the navigation outcome for a requested view token.
// Once authenticated, the role alone determines the view; the requested token
// is echoed back for the client but never overrides the role.
type ResolveViewResponse struct {
	Requested string      `json:"requested" example:"admin"`
	View      models.View `json:"view" example:"teacher"`
}

// StatusResponse reports optional collaborator availability so the client can
// show a configuration banner instead of failing.
type StatusResponse struct {
	Status      string `json:"status" example:"ok"`
	AIEnabled   bool   `json:"aiEnabled"`
	Persistence bool   `json:"persistence"`
}
