package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Telegram
	BotToken       string
	SuperAdminTgID int64

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Security
	JWTSecret       string
	GameTokenTTLMin int

	// Application
	AppEnv          string
	AppPort         string
	LogLevel        string
	WebAppBaseURL   string
	DefaultLanguage string

	// Rate Limiting
	RateLimitPerUser int
	RateLimitPerIP   int

	// Reward economy
	MinWithdrawTON float64
	TapsPerTON     int64
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		BotToken:   getEnv("BOT_TOKEN", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "tonbot"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "tonbot_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:       getEnv("JWT_SECRET_KEY", ""),
		GameTokenTTLMin: getEnvInt("GAME_TOKEN_TTL_MINUTES", 30),

		AppEnv:          getEnv("APP_ENV", "development"),
		AppPort:         getEnv("APP_PORT", "3000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		WebAppBaseURL:   getEnv("WEBAPP_BASE_URL", "http://localhost:3000"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),

		RateLimitPerUser: getEnvInt("RATE_LIMIT_PER_USER", 20),
		RateLimitPerIP:   getEnvInt("RATE_LIMIT_PER_IP", 100),

		MinWithdrawTON: getEnvFloat("MIN_WITHDRAW_TON", 0.5),
		TapsPerTON:     getEnvInt64("TAPS_PER_TON", 1000),
	}

	// Parse super admin telegram ID
	superAdminStr := getEnv("SUPER_ADMIN_TELEGRAM_ID", "")
	if superAdminStr != "" {
		id, err := strconv.ParseInt(superAdminStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SUPER_ADMIN_TELEGRAM_ID: %w", err)
		}
		cfg.SuperAdminTgID = id
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET_KEY must be at least 32 characters")
	}
	if c.MinWithdrawTON < 0 {
		return fmt.Errorf("MIN_WITHDRAW_TON must not be negative")
	}
	if c.TapsPerTON <= 0 {
		return fmt.Errorf("TAPS_PER_TON must be positive")
	}
	return nil
}

func (c *Config) ValidateProductionSecurity() error {
	if c.AppEnv != "production" {
		return nil
	}

	if c.DBSSLMode != "require" {
		return fmt.Errorf("DB_SSLMODE must be 'require' in production")
	}
	if c.JWTSecret == "your_jwt_secret_minimum_32_chars_here_change_this" {
		return fmt.Errorf("JWT_SECRET_KEY must be changed from default in production")
	}
	if c.SuperAdminTgID == 0 {
		return fmt.Errorf("SUPER_ADMIN_TELEGRAM_ID must be set in production")
	}

	return nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) GameTokenTTL() time.Duration {
	return time.Duration(c.GameTokenTTLMin) * time.Minute
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
