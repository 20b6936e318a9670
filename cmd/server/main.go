package main

import (
	"log"

	"github.com/fieldtrack/fieldtrack-api/internal/config"
	"github.com/fieldtrack/fieldtrack-api/internal/database"
	"github.com/fieldtrack/fieldtrack-api/internal/handlers"
	"github.com/fieldtrack/fieldtrack-api/internal/location"
	"github.com/fieldtrack/fieldtrack-api/internal/mail"
	"github.com/fieldtrack/fieldtrack-api/internal/middleware"
	"github.com/fieldtrack/fieldtrack-api/internal/repository"
	"github.com/fieldtrack/fieldtrack-api/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the milestone catalog
	if err := database.SeedMilestones(database.GetDB()); err != nil {
		log.Fatalf("Failed to seed milestones: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)

	// Initialize services
	mailer := mail.NewSMTPMailer(cfg)
	directory := location.NewStaticDirectory()
	authService := services.NewAuthService(userRepo, tokenRepo, mailer, cfg)
	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, directory)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	milestoneHandler := handlers.NewMilestoneHandler(milestoneRepo)
	locationHandler := handlers.NewLocationHandler(directory)
	dashboardHandler := handlers.NewDashboardHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Field Task Tracking API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/password-reset", authHandler.RequestPasswordReset)
			auth.POST("/password-reset-confirm/:uid/:token", authHandler.ConfirmPasswordReset)
			auth.POST("/logout", middleware.RequireAuth(authService), authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(authService), authHandler.GetCurrentUser)
			auth.POST("/change-password", middleware.RequireAuth(authService), authHandler.ChangePassword)
		}

		// User management. The listing is open; mutations need a token and
		// the bulk endpoints the admin role on top.
		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)

			authed := users.Group("", middleware.RequireAuth(authService))
			authed.POST("", userHandler.CreateUser)
			authed.GET("/:id", userHandler.GetUser)
			authed.PATCH("/:id", userHandler.UpdateUser)
			authed.DELETE("/:id", userHandler.DeleteUser)

			bulk := authed.Group("", middleware.RequireAdmin())
			bulk.POST("/bulk-create", userHandler.BulkCreateUsers)
			bulk.PATCH("/bulk-update", userHandler.BulkUpdateUsers)
			bulk.POST("/bulk-delete", userHandler.BulkDeleteUsers)
		}

		// Task routes: the listings feed dashboards and stay open; single
		// retrieval and all mutations require a token.
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/by-location", taskHandler.ListTasksByLocation)
			tasks.GET("/assigned/:user_id", taskHandler.ListAssignedTasks)

			authed := tasks.Group("", middleware.RequireAuth(authService))
			authed.POST("", taskHandler.CreateTask)
			authed.GET("/:id", taskHandler.GetTask)
			authed.PATCH("/:id", taskHandler.UpdateTask)
			authed.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			authed.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Milestone catalog (read only)
		milestones := api.Group("/milestones")
		milestones.Use(middleware.RequireAuth(authService))
		{
			milestones.GET("", milestoneHandler.ListMilestones)
			milestones.GET("/:id", milestoneHandler.GetMilestone)
		}

		// Location directory (read only)
		locations := api.Group("/locations")
		locations.Use(middleware.RequireAuth(authService))
		{
			locations.GET("/states", locationHandler.ListStates)
			locations.GET("/business-areas", locationHandler.ListBusinessAreas)
			locations.GET("/districts", locationHandler.ListDistricts)
			locations.GET("/blocks", locationHandler.ListBlocks)
		}

		// Dashboard routes (open reads)
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/task-summary", dashboardHandler.TaskSummary)
			dashboard.GET("/milestone-progress", dashboardHandler.MilestoneProgress)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
