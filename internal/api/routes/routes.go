package routes

import (
	"log"

	"lead-center-backend/internal/api/handlers"
	"lead-center-backend/internal/api/middleware"
	"lead-center-backend/internal/auth"
	"lead-center-backend/internal/config"
	"lead-center-backend/internal/repository"
	"lead-center-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	leadRepo := repository.NewLeadRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	userRepo := repository.NewUserRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)

	// Initialize services
	catalog, err := service.LoadDispositionCatalog(cfg.DispositionCatalogPath)
	if err != nil {
		log.Printf("Warning: disposition catalog load failed, using built-in defaults: %v", err)
		catalog = service.DefaultDispositionCatalog()
	}
	suggestionService := service.NewSuggestionService(cfg)
	leadService := service.NewLeadService(leadRepo, assignmentRepo, userRepo, campaignRepo, validator, cfg.DefaultPhoneRegion)
	assignmentService := service.NewAssignmentService(assignmentRepo, leadRepo, userRepo, suggestionService, catalog, validator)
	dashboardService := service.NewDashboardService(leadRepo, assignmentRepo, userRepo)
	importService := service.NewImportService(leadRepo, cfg.DefaultPhoneRegion, cfg.ImportMaxRows)
	userService := service.NewUserService(userRepo, validator)

	// Initialize auth
	authService := auth.NewAuthService(cfg, userRepo)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	leadHandler := handlers.NewLeadHandler(leadService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	importHandler := handlers.NewImportHandler(importService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", userHandler.CreateUser)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Lead routes
		leads := v1.Group("/leads")
		{
			leads.GET("", leadHandler.ListLeads)
			leads.POST("", leadHandler.CreateLead)
			leads.POST("/import", importHandler.ImportLeads)
			leads.POST("/campaign", leadHandler.SetCampaign)
			leads.GET("/:ref_id", leadHandler.GetLead)
			leads.GET("/:ref_id/history", leadHandler.GetHistory)
			leads.PUT("/:ref_id/custom-field", leadHandler.SetCustomField)
		}

		// Assignment routes
		assignments := v1.Group("/assignments")
		{
			assignments.GET("", assignmentHandler.ListAssignments)
			assignments.POST("/bulk", authMiddleware.RequireAdmin(), assignmentHandler.BulkAssign)
			assignments.POST("/disposition", assignmentHandler.CreateDisposition)
			assignments.POST("/suggest", assignmentHandler.SuggestSubDisposition)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", dashboardHandler.Summary)
			dashboard.GET("/callers", dashboardHandler.CallerStats)
			dashboard.GET("/activity", dashboardHandler.RecentActivity)
			dashboard.GET("/queue", dashboardHandler.CallerQueue)
			dashboard.GET("/queue/:ref_id/neighbors", dashboardHandler.QueueNeighbors)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id/status", authMiddleware.RequireAdmin(), userHandler.SetStatus)
		}

		v1.GET("/callers", userHandler.EligibleCallers)
		v1.GET("/campaigns", leadHandler.ListCampaigns)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
