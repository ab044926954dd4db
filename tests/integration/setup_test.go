package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"budgeteer/internal/handlers"
	"budgeteer/internal/logger"
	"budgeteer/internal/middleware"
	"budgeteer/internal/models"
	"budgeteer/internal/notify"
	"budgeteer/internal/services"
	"budgeteer/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Category{},
		&models.Transaction{},
		&models.RecurringTransaction{},
		&models.ActivationToken{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db, notify.Noop{})
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db)
	budgetService := services.NewBudgetService(db)
	recurringService := services.NewRecurringService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	recurringHandler := handlers.NewRecurringHandler(recurringService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/activate", authHandler.Activate)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	users := protected.Group("/users")
	users.GET("/:id", userHandler.GetUserByID)
	users.GET("/:id/income/total", userHandler.GetTotalIncome)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:name", categoryHandler.GetCategory)
	categories.PUT("/:name/percentage", categoryHandler.UpdatePercentage)
	categories.DELETE("/:name", categoryHandler.DeleteCategory)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListByCategory)
	transactions.GET("/higher-than", transactionHandler.FindHigherThan)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id/amount", transactionHandler.ChangeAmount)

	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudget)
	budgets.GET("/all", middleware.RequireRole(models.RoleAdmin), budgetHandler.GetAllBudgets)

	recurring := protected.Group("/recurring")
	recurring.POST("", recurringHandler.CreateRecurring)
	recurring.GET("", recurringHandler.ListRecurring)
	recurring.POST("/process", middleware.RequireRole(models.RoleAdmin), recurringHandler.ProcessRecurring)
	recurring.GET("/:id", recurringHandler.GetRecurring)
	recurring.PATCH("/:id", recurringHandler.UpdateRecurring)
	recurring.DELETE("/:id", recurringHandler.DeleteRecurring)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerActiveUser registers a user, activates them with the stored token
// and logs them in. Returns the access token and user ID.
func (app *testApp) registerActiveUser(t *testing.T, name, email string) (accessToken string, userID uint) {
	t.Helper()

	body := fmt.Sprintf(`{"name":%q,"email":%q,"password":"password123","password_confirmation":"password123"}`, name, email)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	userID = uint(user["id"].(float64))

	var activation models.ActivationToken
	if err := app.DB.Where("user_id = ?", userID).First(&activation).Error; err != nil {
		t.Fatalf("expected activation token: %v", err)
	}

	rec = app.request("POST", "/api/v1/auth/activate", fmt.Sprintf(`{"token":%q}`, activation.Token), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("activate failed: %d %s", rec.Code, rec.Body.String())
	}

	return app.loginUser(t, name), userID
}

// registerAdmin registers an active user and promotes them to admin, then
// logs them in again so the token carries the admin role.
func (app *testApp) registerAdmin(t *testing.T, name, email string) (accessToken string, userID uint) {
	t.Helper()

	_, userID = app.registerActiveUser(t, name, email)
	if err := app.DB.Model(&models.User{}).Where("id = ?", userID).Update("role", models.RoleAdmin).Error; err != nil {
		t.Fatalf("failed to promote user: %v", err)
	}
	return app.loginUser(t, name), userID
}

// loginUser logs in and returns the access token.
func (app *testApp) loginUser(t *testing.T, name string) string {
	t.Helper()

	body := fmt.Sprintf(`{"name":%q,"password":"password123"}`, name)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string)
}

// createCategory creates a category through the API and fails the test on error.
func (app *testApp) createCategory(t *testing.T, token, name, polarity string, percentage int) {
	t.Helper()

	body := fmt.Sprintf(`{"name":%q,"polarity":%q,"percentage":%d}`, name, polarity, percentage)
	if polarity == "income" {
		body = fmt.Sprintf(`{"name":%q,"polarity":%q}`, name, polarity)
	}
	rec := app.request("POST", "/api/v1/categories", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
}
