package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "pubquiz-admin/docs" // Import generated docs
	"pubquiz-admin/internal/config"
	"pubquiz-admin/internal/controllers"
	"pubquiz-admin/internal/database"
	"pubquiz-admin/internal/middleware"
	"pubquiz-admin/internal/services"
)

var (
	db                 *gorm.DB
	menuService        services.MenuService
	roomService        services.RoomService
	questionService    services.QuestionService
	teamService        services.TeamService
	menuController     controllers.MenuController
	roomController     controllers.RoomController
	questionController controllers.QuestionController
	teamController     controllers.TeamController
	configuration      *config.Config
)

// @title Pub Quiz Backend
// @version 1.0
// @description Development backend for the pub quiz admin tools
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	menuService = services.NewMenuService(db)
	roomService = services.NewRoomService(db)
	questionService = services.NewQuestionService(db)
	teamService = services.NewTeamService(db)
	menuController = controllers.NewMenuController(menuService)
	roomController = controllers.NewRoomController(roomService)
	questionController = controllers.NewQuestionController(questionService)
	teamController = controllers.NewTeamController(teamService, []byte(configuration.JWTSecret), configuration.UploadDir)

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
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %v", conf)
	return conf
}

// setupDatabase initializes the database connection and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))
	checkPanicErr(os.MkdirAll(conf.UploadDir, 0o755))
	return db
}

// setupRouter initializes the Gin router and sets up the routes
func setupRouter() *gin.Engine {
	router := gin.Default()
	setupRoutes(router)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Menu hierarchy
	router.GET("/menus", menuController.GetAllMenus)
	router.GET("/menus/:id", menuController.GetMenuByID)
	router.POST("/menus", menuController.CreateMenu)
	router.PUT("/menus/:id", menuController.UpdateMenu)
	router.DELETE("/menus/:id", menuController.DeleteMenu)

	router.GET("/categories", menuController.GetAllCategories)
	router.GET("/categories/:id", menuController.GetCategoryByID)
	router.POST("/categories", menuController.CreateCategory)
	router.PUT("/categories/:id", menuController.UpdateCategory)
	router.DELETE("/categories/:id", menuController.DeleteCategory)

	router.GET("/menu-items", menuController.GetAllMenuItems)
	router.GET("/menu-items/by-menu/:menu_id", menuController.GetMenuItemsByMenu)
	router.GET("/menu-items/:id", menuController.GetMenuItemByID)
	router.POST("/menu-items", menuController.CreateMenuItem)
	router.PUT("/menu-items/:id", menuController.UpdateMenuItem)
	router.DELETE("/menu-items/:id", menuController.DeleteMenuItem)

	router.GET("/item-options", menuController.GetAllItemOptions)
	router.POST("/item-options", menuController.CreateItemOption)
	router.PUT("/item-options/:id", menuController.UpdateItemOption)
	router.DELETE("/item-options/:id", menuController.DeleteItemOption)

	// Rooms and per-room menu settings
	router.GET("/rooms", roomController.GetAllRooms)
	router.GET("/rooms/:id", roomController.GetRoomByID)
	router.POST("/rooms", roomController.CreateRoom)
	router.PUT("/rooms/:id", roomController.UpdateRoom)
	router.DELETE("/rooms/:id", roomController.DeleteRoom)

	router.GET("/room-menu-settings", roomController.GetAllRoomMenuSettings)
	router.GET("/room-menu-settings/:room_id", roomController.GetRoomMenuSetting)
	router.POST("/room-menu-settings", roomController.CreateRoomMenuSetting)
	router.PUT("/room-menu-settings/:room_id", roomController.UpdateRoomMenuSetting)
	router.DELETE("/room-menu-settings/:room_id", roomController.DeleteRoomMenuSetting)

	// Questions and answer options
	router.GET("/questions", questionController.GetAllQuestions)
	router.GET("/questions/:id", questionController.GetQuestionByID)
	router.POST("/questions", questionController.CreateQuestion)
	router.PUT("/questions/:id", questionController.UpdateQuestion)
	router.DELETE("/questions/:id", questionController.DeleteQuestion)
	router.PATCH("/questions/:id/activate", questionController.ActivateQuestion)
	router.PATCH("/questions/:id/deactivate", questionController.DeactivateQuestion)

	router.GET("/options", questionController.GetQuestionOptions)
	router.POST("/options/bulk/:question_id", questionController.ReplaceQuestionOptions)

	// Team auth and profile
	router.POST("/login", teamController.Login)
	protected := router.Group("/teams")
	protected.Use(middleware.TeamAuth([]byte(configuration.JWTSecret)))
	{
		protected.PUT("/profile", teamController.UpdateProfile)
		protected.POST("/profile-picture", teamController.UploadProfilePicture)
	}

	// Uploaded profile pictures
	router.Static("/uploads", configuration.UploadDir)

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
		"service":   "pubquiz-backend",
	})
}
