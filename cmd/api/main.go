// @title Quiz Deck API
// @version 1.0
// @description Upload multiple-choice question spreadsheets and take randomized quizzes drawn from them.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
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

	"quiz-deck/internal/adapter"
	"quiz-deck/internal/adapter/spreadsheet"
	"quiz-deck/internal/cache"
	"quiz-deck/internal/config"
	"quiz-deck/internal/database"
	"quiz-deck/internal/domain"
	"quiz-deck/internal/handler"
	"quiz-deck/internal/logger"
	"quiz-deck/internal/middleware"
	"quiz-deck/internal/repository"
	"quiz-deck/internal/sampler"
	"quiz-deck/internal/service"

	_ "quiz-deck/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// multipart framing on top of the file itself
const uploadOverhead = 64 * 1024

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Connect to database
	db, err := database.Open(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err), zap.String("driver", cfg.DB.Driver))
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, cfg.DB.Driver, database.Up); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Session cache
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	} else {
		cacheAdapter = adapter.NewMemoryCacheAdapter(cfg.Quiz.SessionCleanupInterval)
		appLogger.Warn("No Redis address configured, sessions are kept in process memory")
	}

	// Initialize repositories
	poolRepository := repository.NewPoolDatabaseAdapter(db)
	resultRepository := repository.NewResultDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize services
	poolService := service.NewPoolService(poolRepository, resultRepository, spreadsheet.NewExcelQuestionSource(), txManager, cfg.Quiz)
	sessionStore := service.NewSessionStore(cacheAdapter, cfg.Quiz.SessionTTL)
	sessionService := service.NewSessionService(poolService, sessionStore, resultRepository, sampler.New(nil), cfg.Quiz)

	// Initialize handlers
	poolHandler := handler.NewPoolHandler(poolService, cfg.Quiz.MaxUploadBytes)
	sessionHandler := handler.NewSessionHandler(sessionService)
	healthHandler := handler.NewHealthHandler(cacheAdapter)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    cfg.Quiz.MaxUploadBytes + uploadOverhead,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.SetupRoutes(app, poolHandler, sessionHandler, healthHandler)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
