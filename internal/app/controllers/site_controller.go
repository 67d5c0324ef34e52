package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/app/services"
	"github.com/erasmusedu/erasmus-portal/internal/middleware"
)

// SiteController serves the public site content and its admin editor
type SiteController struct {
	siteService services.SiteService
}

// NewSiteController creates a new SiteController
func NewSiteController(siteService services.SiteService) *SiteController {
	return &SiteController{
		siteService: siteService,
	}
}

// GetContent returns the public site aggregate
// @Summary Get site content
// @Description Returns the whole public site aggregate (hero, slides, gallery, teachers, pages, contact, footer)
// @Tags site
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.SiteContent} "Site content"
// @Router /site [get]
func (c *SiteController) GetContent(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.siteService.Content()))
}

// GetPageBySlug returns one active extra page
// @Summary Get a public page
// @Description Resolves an extra page by slug; inactive pages answer 404
// @Tags site
// @Produce json
// @Param slug path string true "Page slug" example(matricula)
// @Success 200 {object} dto.APIResponse{data=models.SitePage} "Page"
// @Failure 404 {object} dto.ErrorResponse "Page not found or inactive"
// @Router /site/pages/{slug} [get]
func (c *SiteController) GetPageBySlug(ctx *gin.Context) {
	page, err := c.siteService.PageBySlug(ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(page))
}

// UpdateContent replaces the site aggregate
// @Summary Update site content
// @Description Replaces the public site aggregate wholesale
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SiteContent true "New site content"
// @Success 200 {object} dto.APIResponse{data=models.SiteContent} "Updated content"
// @Failure 400 {object} dto.ErrorResponse "Invalid site content"
// @Router /admin/site [put]
func (c *SiteController) UpdateContent(ctx *gin.Context) {
	var content models.SiteContent
	if err := ctx.ShouldBindJSON(&content); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid site content")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.siteService.UpdateContent(content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// ListPages returns every extra page, active or not
// @Summary List pages
// @Tags site
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.SitePage} "Pages"
// @Router /admin/site/pages [get]
func (c *SiteController) ListPages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.siteService.ListPages()))
}

// CreatePage adds an extra page
// @Summary Create a page
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SitePageRequest true "Page fields"
// @Success 201 {object} dto.APIResponse{data=models.SitePage} "Created page"
// @Failure 400 {object} dto.ErrorResponse "Invalid page data"
// @Router /admin/site/pages [post]
func (c *SiteController) CreatePage(ctx *gin.Context) {
	var req dto.SitePageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid page data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	page, err := c.siteService.CreatePage(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(page))
}

// UpdatePage replaces an extra page
// @Summary Update a page
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page ID"
// @Param request body dto.SitePageRequest true "Page fields"
// @Success 200 {object} dto.APIResponse{data=models.SitePage} "Updated page"
// @Failure 404 {object} dto.ErrorResponse "Page not found"
// @Router /admin/site/pages/{id} [put]
func (c *SiteController) UpdatePage(ctx *gin.Context) {
	var req dto.SitePageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid page data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	page, err := c.siteService.UpdatePage(ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(page))
}

// DeletePage removes an extra page
// @Summary Delete a page
// @Tags site
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page ID"
// @Success 200 {object} dto.APIResponse "Page deleted"
// @Failure 404 {object} dto.ErrorResponse "Page not found"
// @Router /admin/site/pages/{id} [delete]
func (c *SiteController) DeletePage(ctx *gin.Context) {
	if err := c.siteService.DeletePage(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil))
}
