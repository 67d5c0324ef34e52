package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/erasmusedu/erasmus-portal/internal/app/controllers"
	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	navigationController *controllers.NavigationController,
	siteController *controllers.SiteController,
	userController *controllers.UserController,
	classController *controllers.ClassController,
	studentController *controllers.StudentController,
	financeController *controllers.FinanceController,
	inventoryController *controllers.InventoryController,
	teacherPortalController *controllers.TeacherPortalController,
	parentController *controllers.ParentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	// The marketing site is readable by everyone, logged in or not.
	site := v1.Group("/site")
	{
		site.GET("", siteController.GetContent)
		site.GET("/pages/:slug", siteController.GetPageBySlug)
	}

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// The view resolver accepts anonymous callers; a valid token upgrades the
	// outcome to the role's dashboard.
	navigation := v1.Group("/navigation")
	navigation.Use(authMiddleware.OptionalJWT())
	{
		navigation.GET("/resolve", navigationController.ResolveView)
	}

	v1.GET("/status", navigationController.Status)

	// --- Authenticated routes, one group per dashboard ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", userController.ListUsers)
		admin.POST("/users", userController.CreateUser)
		admin.GET("/users/:id", userController.GetUser)
		admin.PUT("/users/:id", userController.UpdateUser)
		admin.DELETE("/users/:id", userController.DeleteUser)

		admin.GET("/classes", classController.ListClasses)
		admin.POST("/classes", classController.CreateClass)
		admin.GET("/classes/:id", classController.GetClass)
		admin.PUT("/classes/:id", classController.UpdateClass)
		admin.DELETE("/classes/:id", classController.DeleteClass)

		admin.PUT("/site", siteController.UpdateContent)
		admin.GET("/site/pages", siteController.ListPages)
		admin.POST("/site/pages", siteController.CreatePage)
		admin.PUT("/site/pages/:id", siteController.UpdatePage)
		admin.DELETE("/site/pages/:id", siteController.DeletePage)

		admin.GET("/finance/summary", financeController.Summary)
	}

	// The director's dashboard is read-only aggregates.
	director := authenticated.Group("/director")
	director.Use(authMiddleware.RoleRequired(models.RoleDirector))
	{
		director.GET("/finance/summary", financeController.Summary)
		director.GET("/finance", financeController.ListRecords)
		director.GET("/students", studentController.ListStudents)
		director.GET("/classes", classController.ListClasses)
		director.GET("/staff", userController.ListStaff)
		director.GET("/inventory", inventoryController.ListItems)
	}

	teacher := authenticated.Group("/teacher")
	teacher.Use(authMiddleware.RoleRequired(models.RoleTeacher))
	{
		teacher.GET("/classes", teacherPortalController.MyClasses)
		teacher.GET("/classes/:id/students", teacherPortalController.ClassStudents)
		teacher.PUT("/students/:id/grades", studentController.UpdateGrades)
		teacher.GET("/attendance", teacherPortalController.GetAttendance)
		teacher.POST("/attendance", teacherPortalController.ToggleAttendance)
		teacher.GET("/announcements", teacherPortalController.ListAnnouncements)
		teacher.POST("/announcements", teacherPortalController.PostAnnouncement)
		teacher.POST("/students/:id/insight", teacherPortalController.RequestInsight)
		teacher.GET("/insight", teacherPortalController.GetInsight)
		teacher.POST("/newsletter", teacherPortalController.GenerateNewsletter)
	}

	staff := authenticated.Group("/staff")
	staff.Use(authMiddleware.RoleRequired(models.RoleStaff))
	{
		staff.GET("/students", studentController.ListStudents)
		staff.POST("/students", studentController.Enroll)
		staff.GET("/students/:id", studentController.GetStudent)
		staff.PUT("/students/:id", studentController.UpdateStudent)

		staff.GET("/finance", financeController.ListRecords)
		staff.POST("/finance", financeController.AppendRecord)

		staff.GET("/inventory", inventoryController.ListItems)
		staff.POST("/inventory", inventoryController.CreateItem)
		staff.POST("/inventory/:id/adjust", inventoryController.AdjustQuantity)
	}

	parent := authenticated.Group("/parent")
	parent.Use(authMiddleware.RoleRequired(models.RoleParent))
	{
		parent.GET("/student", parentController.GetChild)
		parent.GET("/student/grades", parentController.GetGrades)
		parent.GET("/messages", parentController.ListMessages)
		parent.POST("/messages", parentController.PostMessage)
	}
}
