package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/app/services"
	"github.com/erasmusedu/erasmus-portal/internal/middleware"
)

// ParentController handles the parent dashboard
type ParentController struct {
	parentService services.ParentService
}

// NewParentController creates a new ParentController
func NewParentController(parentService services.ParentService) *ParentController {
	return &ParentController{
		parentService: parentService,
	}
}

// GetChild returns the parent's linked student
// @Summary Get the linked child
// @Tags parent
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student"
// @Failure 404 {object} dto.ErrorResponse "No student linked to this account"
// @Router /parent/student [get]
func (c *ParentController) GetChild(ctx *gin.Context) {
	child, err := c.parentService.Child(middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(child))
}

// GetGrades returns the child's grades with the quarter average
// @Summary Get the child's grades
// @Tags parent
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentGradesResponse} "Grades"
// @Failure 404 {object} dto.ErrorResponse "No student linked to this account"
// @Router /parent/student/grades [get]
func (c *ParentController) GetGrades(ctx *gin.Context) {
	grades, err := c.parentService.ChildGrades(middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grades))
}

// PostMessage posts a message to the school
// @Summary Post a message
// @Description Messages live for the process lifetime; nothing delivers them anywhere
// @Tags parent
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MessageRequest true "Message text"
// @Success 201 {object} dto.APIResponse{data=dto.Message} "Posted message"
// @Router /parent/messages [post]
func (c *ParentController) PostMessage(ctx *gin.Context) {
	var req dto.MessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid message data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	message, err := c.parentService.PostMessage(middleware.CurrentUser(ctx), req.Text)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(message))
}

// ListMessages returns the parent's posted messages
// @Summary List messages
// @Tags parent
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.Message} "Messages"
// @Router /parent/messages [get]
func (c *ParentController) ListMessages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.parentService.Messages(middleware.CurrentUser(ctx))))
}
