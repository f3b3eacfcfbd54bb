// @title Math Drill API
// @version 1.0
// @description Study topics and AI generated practice questions.
// @host localhost:7000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "mathdrill/cmd/api/docs"
	"mathdrill/internal/adapter"
	"mathdrill/internal/adapter/quizgen"
	"mathdrill/internal/cache"
	"mathdrill/internal/config"
	"mathdrill/internal/database"
	"mathdrill/internal/domain"
	"mathdrill/internal/handler"
	"mathdrill/internal/logger"
	"mathdrill/internal/middleware"
	"mathdrill/internal/repository"
	"mathdrill/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer func() { _ = logger.Sync() }()

	// Connect to database
	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer db.Close()

	// Redis is optional; without it topic reads go straight to the database
	var topicCache domain.Cache
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	switch {
	case err != nil:
		appLogger.Warn("Redis unavailable, topic cache disabled", zap.Error(err))
	case redisClient == nil:
		appLogger.Info("Redis address not set, topic cache disabled")
	default:
		defer redisClient.Close()
		topicCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Connected to Redis", zap.String("address", cfg.Redis.Address))
	}

	generator, err := quizgen.NewRouterFromConfig(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create question generator", zap.Error(err))
	}

	// Initialize repositories
	topicRepository := repository.NewTopicDatabaseAdapter(db)
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize services
	topicTTL := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Topic, 5*time.Minute)
	topicService := service.NewTopicService(topicRepository, questionRepository, txManager, topicCache, topicTTL)
	questionService := service.NewQuestionService(questionRepository, topicService, generator)

	// Initialize handlers
	topicHandler := handler.NewTopicHandler(topicService)
	questionHandler := handler.NewQuestionHandler(questionService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", handler.NewHealthHandler(db, topicCache).Check)

	handler.RegisterRoutes(app.Group("/api"), topicHandler, questionHandler)

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("ai_provider", string(cfg.DefaultProvider())),
			zap.String("db_driver", cfg.DB.Driver),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
