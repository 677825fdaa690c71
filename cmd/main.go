package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"

	_ "github.com/theotejano-rpg/fullstack-prototype-tejano/docs" // Import generated docs
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/auth"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/config"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/controllers"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/database"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/middleware"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/services"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/store"
)

var (
	configuration *config.Config
	documents     *store.Store
	session       *auth.Session

	authController       *controllers.AuthController
	accountController    controllers.AccountController
	departmentController controllers.DepartmentController
	employeeController   controllers.EmployeeController
	requestController    controllers.RequestController
)

// @title Inventory/Procurement Tracker API
// @version 1.0
// @description Account, department, employee and purchase-request tracking backend
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Open durable storage and load (or seed) the document
	kv := setupStorage(configuration)

	// Restore a remembered session, if any
	session = auth.NewSession(kv, documents)
	if _, err := session.Restore(); err != nil {
		log.WithError(err).Warn("Could not restore session")
	}

	// Initialize services and controllers
	authService := services.NewAuthService(documents, kv)
	accountService := services.NewAccountService(documents)
	departmentService := services.NewDepartmentService(documents)
	employeeService := services.NewEmployeeService(documents)
	requestService := services.NewRequestService(documents)

	authController = controllers.NewAuthController(authService, session)
	accountController = controllers.NewAccountController(accountService, session)
	departmentController = controllers.NewDepartmentController(departmentService)
	employeeController = controllers.NewEmployeeController(employeeService)
	requestController = controllers.NewRequestController(requestService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupStorage opens the durable key-value storage and loads the application
// document from it, seeding the default admin and departments on first run.
func setupStorage(conf *config.Config) *database.KeyValue {
	db, err := database.InitStorage(database.StorageConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	kv := database.NewKeyValue(db)
	documents, err = store.Open(kv)
	checkPanicErr(err)
	return kv
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()

	// The surface is consumed by a browser front end
	router.Use(cors.Default())
	router.Use(middleware.RequestLogger())

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router. Groups mirror the
// original navigation surface: public, protected (any authenticated
// identity) and admin-only, with the guard evaluated on every request.
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Home view; unknown routes fall back here
	router.GET("/", homeHandler)
	router.NoRoute(homeHandler)

	v1 := router.Group("/api/v1")
	{
		// Public routes: register, verify-email, login
		authApi := v1.Group("/auth")
		{
			authApi.POST("/register", authController.Register)
			authApi.GET("/verify-email", authController.PendingVerification)
			authApi.POST("/verify-email", authController.VerifyEmail)
			authApi.POST("/login", authController.Login)
			authApi.POST("/logout", authController.Logout)
			authApi.GET("/session", authController.Session)
		}

		// Protected routes: profile and own requests
		protectedApi := v1.Group("")
		protectedApi.Use(middleware.RequireSession(session))
		{
			protectedApi.GET("/profile", authController.Profile)
			protectedApi.GET("/requests", requestController.ListRequests)
			protectedApi.POST("/requests", requestController.SubmitRequest)
		}

		// Admin-only routes: accounts, departments, employees
		adminApi := v1.Group("")
		adminApi.Use(middleware.RequireAdmin(session))
		{
			adminApi.GET("/accounts", accountController.ListAccounts)
			adminApi.POST("/accounts", accountController.CreateAccount)
			adminApi.PUT("/accounts/:id", accountController.UpdateAccount)
			adminApi.POST("/accounts/:id/password", accountController.ResetPassword)
			adminApi.DELETE("/accounts/:id", accountController.DeleteAccount)

			adminApi.GET("/departments", departmentController.ListDepartments)
			adminApi.POST("/departments", departmentController.CreateDepartment)
			adminApi.PUT("/departments/:id", departmentController.UpdateDepartment)
			adminApi.DELETE("/departments/:id", departmentController.DeleteDepartment)

			adminApi.GET("/employees", employeeController.ListEmployees)
			adminApi.POST("/employees", employeeController.CreateEmployee)
			adminApi.DELETE("/employees/:id", employeeController.DeleteEmployee)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "procurement-tracker",
	})
}

// homeHandler handles the home view and the fallback for unknown routes
// @Summary Home
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func homeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "procurement-tracker",
		"message": "Inventory/Procurement Tracker",
	})
}
