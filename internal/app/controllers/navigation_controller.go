package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/app/services"
	"github.com/erasmusedu/erasmus-portal/internal/middleware"
)

// NavigationController resolves view tokens and reports service status
type NavigationController struct {
	navService  services.NavigationService
	aiEnabled   bool
	persistence bool
}

// NewNavigationController creates a new NavigationController
func NewNavigationController(navService services.NavigationService, aiEnabled, persistence bool) *NavigationController {
	return &NavigationController{
		navService:  navService,
		aiEnabled:   aiEnabled,
		persistence: persistence,
	}
}

// ResolveView maps a requested view token to the view the caller may see
// @Summary Resolve a view token
// @Description Anonymous callers reach only home and login; authenticated callers always land on their role's dashboard
// @Tags navigation
// @Produce json
// @Param view query string false "Requested view token" example(admin)
// @Success 200 {object} dto.APIResponse{data=dto.ResolveViewResponse} "Resolved view"
// @Router /navigation/resolve [get]
func (c *NavigationController) ResolveView(ctx *gin.Context) {
	requested := ctx.Query("view")
	view := c.navService.Resolve(middleware.CurrentUser(ctx), requested)

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ResolveViewResponse{
		Requested: requested,
		View:      view,
	}))
}

// Status reports optional collaborator availability
// @Summary Service status
// @Description Reports whether AI insight and the persistence backend are configured
// @Tags navigation
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StatusResponse} "Service status"
// @Router /status [get]
func (c *NavigationController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.StatusResponse{
		Status:      "ok",
		AIEnabled:   c.aiEnabled,
		Persistence: c.persistence,
	}))
}
