package services

import (
	"github.com/erasmusedu/erasmus-portal/internal/app/models"
)

// NavigationService maps a (possibly absent) identity and a requested view
// token to exactly one view. Without an identity only the login form and the
// public site are reachable; with one, the role alone decides the dashboard
// and the requested token is ignored.
type NavigationService interface {
	Resolve(identity *models.User, requested string) models.View
}

type navigationServiceImpl struct{}

// NewNavigationService creates the role router.
func NewNavigationService() NavigationService {
	return &navigationServiceImpl{}
}

// Resolve implements the routing rules. An empty token defaults to "home".
func (s *navigationServiceImpl) Resolve(identity *models.User, requested string) models.View {
	if requested == "" {
		requested = string(models.ViewHome)
	}

	if identity == nil {
		if requested == string(models.ViewLogin) {
			return models.ViewLogin
		}
		return models.ViewHome
	}

	return models.DashboardFor(identity.Role)
}
