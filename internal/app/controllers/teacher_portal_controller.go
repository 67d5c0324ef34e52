package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/app/services"
	"github.com/erasmusedu/erasmus-portal/internal/middleware"
)

// TeacherPortalController handles the teacher dashboard
type TeacherPortalController struct {
	portalService services.TeacherPortalService
}

// NewTeacherPortalController creates a new TeacherPortalController
func NewTeacherPortalController(portalService services.TeacherPortalService) *TeacherPortalController {
	return &TeacherPortalController{
		portalService: portalService,
	}
}

// MyClasses returns the classes assigned to the authenticated teacher
// @Summary List own classes
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Class} "Classes"
// @Router /teacher/classes [get]
func (c *TeacherPortalController) MyClasses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.portalService.ClassesFor(middleware.CurrentUser(ctx))))
}

// ClassStudents returns the students of one of the teacher's classes
// @Summary List class students
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students"
// @Failure 403 {object} dto.ErrorResponse "Class is not assigned to the teacher"
// @Router /teacher/classes/{id}/students [get]
func (c *TeacherPortalController) ClassStudents(ctx *gin.Context) {
	students, err := c.portalService.StudentsFor(middleware.CurrentUser(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// ToggleAttendance flips one student's presence for a day
// @Summary Toggle attendance
// @Description A student with no entry counts as present, so the first toggle marks an absence
// @Tags teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AttendanceToggleRequest true "Student and day"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceResponse} "Day attendance"
// @Failure 403 {object} dto.ErrorResponse "Student is not in one of the teacher's classes"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /teacher/attendance [post]
func (c *TeacherPortalController) ToggleAttendance(ctx *gin.Context) {
	var req dto.AttendanceToggleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	attendance, err := c.portalService.ToggleAttendance(middleware.CurrentUser(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(attendance))
}

// GetAttendance returns a day's attendance map
// @Summary Get attendance
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day, YYYY-MM-DD; defaults to today"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceResponse} "Day attendance"
// @Router /teacher/attendance [get]
func (c *TeacherPortalController) GetAttendance(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.portalService.Attendance(ctx.Query("date"))))
}

// PostAnnouncement publishes a class announcement
// @Summary Post an announcement
// @Description Announcements live for the process lifetime; nothing is persisted
// @Tags teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AnnouncementRequest true "Announcement text"
// @Success 201 {object} dto.APIResponse{data=dto.Announcement} "Posted announcement"
// @Router /teacher/announcements [post]
func (c *TeacherPortalController) PostAnnouncement(ctx *gin.Context) {
	var req dto.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(c.portalService.PostAnnouncement(req.Text)))
}

// ListAnnouncements returns posted announcements, newest first
// @Summary List announcements
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.Announcement} "Announcements"
// @Router /teacher/announcements [get]
func (c *TeacherPortalController) ListAnnouncements(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.portalService.Announcements()))
}

// RequestInsight starts an asynchronous AI analysis of one student
// @Summary Request a student insight
// @Description Generation runs in the background; poll GET /teacher/insight for the result. A newer request supersedes an in-flight one
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 202 {object} dto.APIResponse{data=dto.InsightResponse} "Insight pending"
// @Failure 403 {object} dto.ErrorResponse "Student is not in one of the teacher's classes"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /teacher/students/{id}/insight [post]
func (c *TeacherPortalController) RequestInsight(ctx *gin.Context) {
	insight, err := c.portalService.RequestInsight(middleware.CurrentUser(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.NewAPIResponse(insight))
}

// GetInsight returns the state of the teacher's latest insight request
// @Summary Poll the current insight
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.InsightResponse} "Insight state"
// @Router /teacher/insight [get]
func (c *TeacherPortalController) GetInsight(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.portalService.Insight(middleware.CurrentUser(ctx))))
}

// GenerateNewsletter produces a parent newsletter from school events
// @Summary Generate a newsletter
// @Description Synchronous generation; failures answer with a fallback text instead of an error
// @Tags teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NewsletterRequest true "School events"
// @Success 200 {object} dto.APIResponse{data=dto.NewsletterResponse} "Newsletter text"
// @Router /teacher/newsletter [post]
func (c *TeacherPortalController) GenerateNewsletter(ctx *gin.Context) {
	var req dto.NewsletterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid newsletter data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.portalService.GenerateNewsletter(ctx, req.Events)))
}
