package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/edututor/backend/docs"
	"github.com/edututor/backend/internal/catalog"
	"github.com/edututor/backend/internal/config"
	"github.com/edututor/backend/internal/handlers"
	"github.com/edututor/backend/internal/llm"
	"github.com/edututor/backend/internal/logger"
	"github.com/edututor/backend/internal/middlewares"
	"github.com/edututor/backend/internal/painter"
	"github.com/edututor/backend/internal/repositories"
	"github.com/edututor/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// tutorPath is the AI tutor route, open to any origin
const tutorPath = "/api/v1/ai-tutor"

// @title EduTutor API
// @version 1.0
// @description API for the lesson browser, lesson player, progress dashboard, quizzes and AI tutor
// @BasePath /api/v1
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting EduTutor API")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Load lesson catalog
	lessons, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Logger.Fatal("Failed to load lesson catalog", zap.Error(err))
	}

	completer, err := newCompleter(ctx, cfg.Tutor)
	if err != nil {
		logger.Logger.Fatal("Failed to create tutor client", zap.Error(err))
	}

	// Initialize repositories
	progressRepo := repositories.NewProgressRepository(db, logger.Logger)
	profileStore := repositories.NewProfileStore(rdb, logger.Logger)

	// Initialize services
	profileService := services.NewProfileService(profileStore, logger.Logger)
	lessonService := services.NewLessonService(lessons, logger.Logger)
	progressService := services.NewProgressService(progressRepo, lessons, profileService, logger.Logger)
	quizService := services.NewQuizService(lessons, logger.Logger)
	tutorService := services.NewTutorService(completer, logger.Logger)

	// Start the floating books scene
	scene := painter.NewScene(sceneConfig(cfg.Scene), time.Now().UnixNano())
	animator := painter.NewAnimator(scene, cfg.Scene.FPS, logger.Logger)
	animator.Start()
	defer animator.Stop()

	// Initialize handlers
	lessonHandler := handlers.NewLessonHandler(lessonService, logger.Logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger.Logger)
	profileHandler := handlers.NewProfileHandler(profileService, logger.Logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger.Logger)
	tutorHandler := handlers.NewTutorHandler(tutorService, logger.Logger)
	sceneHandler := handlers.NewSceneHandler(animator, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Rejections on the tutor route keep the {error, type} body
	rejections := middlewares.ErrorWriterByPath(middlewares.WriteJSONError, map[string]middlewares.ErrorWriter{
		tutorPath: handlers.WriteTutorRejection,
	})

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger, "/health"))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger, rejections))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins, tutorPath))
	r.Use(middlewares.RateLimitMiddleware(100, time.Minute, rejections))
	r.Use(middlewares.RequestSizeLimitMiddleware(10*1024*1024, rejections)) // 10MB

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		lessonHandler.RegisterRoutes(r)
		progressHandler.RegisterRoutes(r)
		profileHandler.RegisterRoutes(r)
		quizHandler.RegisterRoutes(r)
		tutorHandler.RegisterRoutes(r)
		sceneHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Upstream tutor calls can take longer than regular requests
		WriteTimeout: cfg.Tutor.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// loadCatalog returns the embedded catalog unless a file path is configured
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// newCompleter creates the upstream chat client for the configured provider.
// A missing API key does not stop the API, tutor requests then fail with server_error.
func newCompleter(ctx context.Context, cfg config.TutorConfig) (llm.Completer, error) {
	if cfg.APIKey == "" {
		logger.Logger.Warn("TUTOR_API_KEY is not set, tutor requests will fail")
	}

	if cfg.Provider == "gemini" {
		client, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.BaseURL, cfg.Model, &http.Client{Timeout: cfg.Timeout})
		if errors.Is(err, llm.ErrMissingAPIKey) {
			return llm.NewGatewayClient("", cfg.BaseURL, cfg.Model, cfg.Timeout), nil
		}
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	return llm.NewGatewayClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout), nil
}

// sceneConfig applies the configured scene size on top of the painter defaults
func sceneConfig(c config.SceneConfig) painter.Config {
	pc := painter.DefaultConfig()
	pc.Width = float64(c.Width)
	pc.Height = float64(c.Height)
	pc.BookCount = c.BookCount
	pc.ApplyRoll = c.ApplyRoll
	return pc
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "edututor_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directories if running from cmd/api
		if _, err := os.Stat("../../migrations"); err == nil {
			migrationPath = "file://../../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
