package routes

import (
	"fugazero-backend/config"
	"fugazero-backend/controllers"
	"fugazero-backend/models"
	"fugazero-backend/services"
	"fugazero-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://fugazero.cl",
			"https://app.fugazero.cl",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.POST("/register", utils.RequireRoles(models.RoleAdmin), controllers.Register)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		staff := utils.RequireRoles(models.RoleAdmin, models.RoleSecretary)
		adminOnly := utils.RequireRoles(models.RoleAdmin)

		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", staff, controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", staff, controllers.UpdateClient)
			clients.DELETE("/:id", adminOnly, controllers.DeleteClient)
		}

		// Service catalog routes
		servicesGroup := api.Group("/services")
		{
			servicesGroup.POST("", staff, controllers.CreateService)
			servicesGroup.GET("", controllers.GetServices)
			servicesGroup.GET("/:id", controllers.GetService)
			servicesGroup.PUT("/:id", staff, controllers.UpdateService)
			servicesGroup.DELETE("/:id", adminOnly, controllers.DeleteService)
		}

		// Job routes
		jobs := api.Group("/jobs")
		{
			jobs.POST("", staff, controllers.CreateJob)
			jobs.GET("", controllers.GetJobs)
			jobs.GET("/:id", controllers.GetJob)
			jobs.PUT("/:id", staff, controllers.UpdateJob)
			jobs.PATCH("/:id/status", controllers.UpdateJobStatus)
			jobs.DELETE("/:id", adminOnly, controllers.DeleteJob)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", staff, controllers.CreateInvoice)
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.PUT("/:id", staff, controllers.UpdateInvoice)
			invoices.DELETE("/:id", adminOnly, controllers.DeleteInvoice)
		}

		// Cash register routes
		cash := api.Group("/cash")
		{
			cash.POST("", staff, controllers.CreateCashTransaction)
			cash.GET("", staff, controllers.GetCashTransactions)
			cash.GET("/summary", staff, controllers.GetCashSummary)
			cash.DELETE("/:id", adminOnly, controllers.DeleteCashTransaction)
		}

		// User routes
		users := api.Group("/users")
		{
			users.GET("", staff, controllers.GetUsers)
			users.PUT("/:id", adminOnly, controllers.UpdateUser)
			users.DELETE("/:id", adminOnly, controllers.DeactivateUser)
		}

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", staff, reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard/start", controllers.GetDashboardStart)

		// Notification routes
		notificationController := controllers.NotificationController{
			Service: services.NewNotificationService(config.DB),
		}
		notifications := api.Group("/notifications")
		{
			notifications.GET("", staff, notificationController.GetNotificationLogs)
			notifications.POST("/run", adminOnly, notificationController.RunNotifications)
		}
	}

	return r
}
