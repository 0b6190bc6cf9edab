// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database  DatabaseConfig
	Redis     RedisConfig
	Server    ServerConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	Tutor     TutorConfig
	Scene     SceneConfig
	Scheduler SchedulerConfig
	// CatalogPath overrides the embedded lesson catalog when set
	CatalogPath string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// TutorConfig holds upstream language model settings
type TutorConfig struct {
	Provider string // "gateway" or "gemini"
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// SceneConfig holds settings of the floating books scene
type SceneConfig struct {
	Width     int
	Height    int
	BookCount int
	FPS       int
	ApplyRoll bool
}

// SchedulerConfig holds background job settings
type SchedulerConfig struct {
	StreakSpec string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Database configuration
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return nil, fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	// Server configuration
	cfg.Server.Port, err = intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration, the tutor widget is embedded on arbitrary pages so "*" is the default
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Redis configuration
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		redisHost = "localhost"
	}
	cfg.Redis.Host = redisHost
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD") // optional
	if cfg.Redis.DB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Tutor configuration. The API key is checked per request so the rest of the API can run without it.
	cfg.Tutor.Provider = strings.ToLower(os.Getenv("TUTOR_PROVIDER"))
	if cfg.Tutor.Provider == "" {
		cfg.Tutor.Provider = "gateway"
	}
	if cfg.Tutor.Provider != "gateway" && cfg.Tutor.Provider != "gemini" {
		return nil, fmt.Errorf("invalid TUTOR_PROVIDER: %q", cfg.Tutor.Provider)
	}
	cfg.Tutor.APIKey = os.Getenv("TUTOR_API_KEY")
	cfg.Tutor.BaseURL = os.Getenv("TUTOR_BASE_URL")
	if cfg.Tutor.BaseURL == "" && cfg.Tutor.Provider == "gateway" {
		cfg.Tutor.BaseURL = "https://ai.gateway.lovable.dev/v1"
	}
	cfg.Tutor.Model = os.Getenv("TUTOR_MODEL")
	if cfg.Tutor.Model == "" {
		if cfg.Tutor.Provider == "gemini" {
			cfg.Tutor.Model = "gemini-2.5-flash"
		} else {
			cfg.Tutor.Model = "google/gemini-2.5-flash"
		}
	}
	timeoutStr := os.Getenv("TUTOR_TIMEOUT")
	if timeoutStr == "" {
		timeoutStr = "60s"
	}
	cfg.Tutor.Timeout, err = time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TUTOR_TIMEOUT: %w", err)
	}

	// Scene configuration
	if cfg.Scene.Width, err = intEnv("SCENE_WIDTH", 1280); err != nil {
		return nil, err
	}
	if cfg.Scene.Height, err = intEnv("SCENE_HEIGHT", 720); err != nil {
		return nil, err
	}
	if cfg.Scene.BookCount, err = intEnv("SCENE_BOOKS", 15); err != nil {
		return nil, err
	}
	if cfg.Scene.FPS, err = intEnv("SCENE_FPS", 30); err != nil {
		return nil, err
	}
	cfg.Scene.ApplyRoll = os.Getenv("SCENE_APPLY_ROLL") == "true"

	// Scheduler configuration
	cfg.Scheduler.StreakSpec = os.Getenv("STREAK_CRON")
	if cfg.Scheduler.StreakSpec == "" {
		cfg.Scheduler.StreakSpec = "5 0 * * *" // every day at 00:05
	}

	cfg.CatalogPath = os.Getenv("CATALOG_PATH")

	return cfg, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	if c.Database.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// RedisAddr returns the host:port of the Redis server
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func intEnv(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// parseOrigins splits a comma-separated origin list, defaulting to allow all
func parseOrigins(s string) []string {
	if s == "" {
		return []string{"*"}
	}
	origins := strings.Split(s, ",")
	result := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			result = append(result, origin)
		}
	}
	if len(result) == 0 {
		return []string{"*"}
	}
	return result
}
