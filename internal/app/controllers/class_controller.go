package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/app/services"
	"github.com/erasmusedu/erasmus-portal/internal/middleware"
)

// ClassController handles class management
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// ListClasses returns all classes
// @Summary List classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Class} "Classes"
// @Router /admin/classes [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.classService.ListClasses()))
}

// GetClass returns one class by id
// @Summary Get a class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} dto.APIResponse{data=models.Class} "Class"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /admin/classes/{id} [get]
func (c *ClassController) GetClass(ctx *gin.Context) {
	class, err := c.classService.GetClass(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(class))
}

// CreateClass adds a class
// @Summary Create a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ClassRequest true "Class fields"
// @Success 201 {object} dto.APIResponse{data=models.Class} "Created class"
// @Failure 400 {object} dto.ErrorResponse "Invalid class data"
// @Router /admin/classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req dto.ClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class, err := c.classService.CreateClass(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(class))
}

// UpdateClass replaces a class's fields
// @Summary Update a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Param request body dto.ClassRequest true "Class fields"
// @Success 200 {object} dto.APIResponse{data=models.Class} "Updated class"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /admin/classes/{id} [put]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	var req dto.ClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class, err := c.classService.UpdateClass(ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(class))
}

// DeleteClass removes a class
// @Summary Delete a class
// @Description Removes the class, applying the configured policy to enrolled students
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} dto.APIResponse "Class deleted"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 409 {object} dto.ErrorResponse "Class still has enrolled students"
// @Router /admin/classes/{id} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	if err := c.classService.DeleteClass(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil))
}
