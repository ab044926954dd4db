package main

import (
	"fmt"
	"net/http"
	"os"

	"budgeteer/internal/config"
	"budgeteer/internal/database"
	"budgeteer/internal/handlers"
	"budgeteer/internal/logger"
	"budgeteer/internal/middleware"
	"budgeteer/internal/models"
	"budgeteer/internal/notify"
	"budgeteer/internal/services"
	"budgeteer/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "budgeteer/internal/docs" // Import swagger docs
)

// @title           Budgeteer API
// @version         1.0
// @description     Budgeteer is a personal finance service for recording income and expenses, planning budgets per category, and scheduling recurring transactions.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Activation emails go through RabbitMQ when configured. Without a
	// broker the API still works, activation tokens just have to be read
	// from the database by an operator.
	var sender notify.Sender = notify.Noop{}
	if appConfig.AMQPURL != "" {
		client, err := notify.NewClient(appConfig.AMQPURL, appConfig.AMQPExchange, appConfig.AMQPQueue)
		if err != nil {
			log.Warnf("AMQP unavailable, activation emails disabled: %v", err)
		} else {
			defer client.Close()
			sender = client
		}
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db, sender)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db)
	budgetService := services.NewBudgetService(db)
	recurringService := services.NewRecurringService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	recurringHandler := handlers.NewRecurringHandler(recurringService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/activate", authHandler.Activate)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// User routes
	users := protected.Group("/users")
	users.GET("/:id", userHandler.GetUserByID)
	users.GET("/:id/income/total", userHandler.GetTotalIncome)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:name", categoryHandler.GetCategory)
	categories.PUT("/:name/percentage", categoryHandler.UpdatePercentage)
	categories.DELETE("/:name", categoryHandler.DeleteCategory)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListByCategory)
	transactions.GET("/higher-than", transactionHandler.FindHigherThan)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id/amount", transactionHandler.ChangeAmount)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudget)
	budgets.GET("/all", middleware.RequireRole(models.RoleAdmin), budgetHandler.GetAllBudgets)

	// Recurring transaction routes
	recurring := protected.Group("/recurring")
	recurring.POST("", recurringHandler.CreateRecurring)
	recurring.GET("", recurringHandler.ListRecurring)
	recurring.POST("/process", middleware.RequireRole(models.RoleAdmin), recurringHandler.ProcessRecurring)
	recurring.GET("/:id", recurringHandler.GetRecurring)
	recurring.PATCH("/:id", recurringHandler.UpdateRecurring)
	recurring.DELETE("/:id", recurringHandler.DeleteRecurring)

	log.Infof("Starting Budgeteer API server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
