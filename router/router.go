package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tidyrota/cleaning-app/controllers"
	"github.com/tidyrota/cleaning-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	cleanerCtrl := controllers.NewCleanerController(db)
	jobCtrl := controllers.NewJobController(db)
	assignmentCtrl := controllers.NewAssignmentController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/profile", userCtrl.GetProfile)

		// WebSocket feed untuk live refresh
		authed.GET("/ws/schedule", controllers.ScheduleFeedHandler)

		// Read: admin dan cleaner
		read := authed.Group("/")
		read.Use(middlewares.RequireUser())
		{
			read.GET("/dashboard/summary", dashboardCtrl.GetSummary)
			read.GET("/cleaners", cleanerCtrl.GetAllCleaners)
			read.GET("/cleaners/:cleaner_id", cleanerCtrl.GetCleanerByID)
			read.GET("/jobs", jobCtrl.GetAllJobs)
			read.GET("/jobs/:job_id", jobCtrl.GetJobByID)
			read.GET("/assignments", assignmentCtrl.GetAllAssignments)
		}

		// Mutations: admin only
		admin := authed.Group("/")
		admin.Use(middlewares.RequireAdmin())
		{
			admin.POST("/cleaners", cleanerCtrl.CreateCleaner)
			admin.PATCH("/cleaners/:cleaner_id", cleanerCtrl.UpdateCleaner)
			admin.DELETE("/cleaners/:cleaner_id", cleanerCtrl.DeleteCleaner)

			admin.POST("/jobs", jobCtrl.CreateJob)
			admin.PATCH("/jobs/:job_id", jobCtrl.UpdateJob)
			admin.DELETE("/jobs/:job_id", jobCtrl.DeleteJob)

			admin.POST("/assignments/schedule", assignmentCtrl.ScheduleAssignment)
			admin.PATCH("/assignments/:assignment_id", assignmentCtrl.UpdateAssignment)
			admin.DELETE("/assignments/:assignment_id", assignmentCtrl.DeleteAssignment)
		}
	}

	return r
}
