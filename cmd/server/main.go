package main

import (
	"log"

	"github.com/emunicipality/backend/internal/config"
	"github.com/emunicipality/backend/internal/database"
	"github.com/emunicipality/backend/internal/handler"
	"github.com/emunicipality/backend/internal/middleware"
	"github.com/emunicipality/backend/internal/repository"
	"github.com/emunicipality/backend/internal/service"
	"github.com/emunicipality/backend/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.IsDevelopment()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}
	logger.Log.Info("Database ready")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	docTypeRepo := repository.NewDocTypeRepository(db)
	docRepo := repository.NewDocumentRepository(db)

	// Initialize services
	userService := service.NewUserService(db, userRepo, docRepo)
	docTypeService := service.NewDocTypeService(db, docTypeRepo, docRepo)
	documentService := service.NewDocumentService(db, docRepo, userRepo, docTypeRepo)

	// Initialize handlers
	verbose := cfg.IsDevelopment()
	userHandler := handler.NewUserHandler(userService, verbose)
	docTypeHandler := handler.NewDocTypeHandler(docTypeService, verbose)
	documentHandler := handler.NewDocumentHandler(documentService, verbose)

	// Setup Gin router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(!cfg.IsDevelopment()))
	router.Use(cors.Default())

	// Rate limiting (skipped when no Redis is configured)
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Log.Fatal("Invalid REDIS_URL", zap.Error(err))
		}
		limiter := middleware.NewRateLimiter(redis.NewClient(opt), middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
		})
		router.Use(limiter.Middleware())
	}

	// Service routes
	router.GET("/", handler.Welcome)
	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(handler.NotFound)

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", userHandler.GetAllUsers)
			users.GET("/:id", userHandler.GetUserByID)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		docTypes := api.Group("/doctypes")
		{
			docTypes.GET("", docTypeHandler.GetAllDocTypes)
			docTypes.GET("/:id", docTypeHandler.GetDocTypeByID)
			docTypes.POST("", docTypeHandler.CreateDocType)
			docTypes.PUT("/:id", docTypeHandler.UpdateDocType)
			docTypes.DELETE("/:id", docTypeHandler.DeleteDocType)
		}

		documents := api.Group("/documents")
		{
			documents.GET("", documentHandler.GetAllDocuments)
			documents.GET("/user/:userId", documentHandler.GetDocumentsByUserID)
			documents.GET("/:id", documentHandler.GetDocumentByID)
			documents.POST("", documentHandler.CreateDocument)
			documents.PUT("/:id", documentHandler.UpdateDocument)
			documents.DELETE("/:id", documentHandler.DeleteDocument)
		}
	}

	logger.Log.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(cfg.ServerPort); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
