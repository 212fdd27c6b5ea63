package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tontap/ton_tap_bot/internal/config"
	"github.com/tontap/ton_tap_bot/internal/database"
	"github.com/tontap/ton_tap_bot/internal/handlers"
	"github.com/tontap/ton_tap_bot/internal/middleware"
	"github.com/tontap/ton_tap_bot/internal/repositories"
	"github.com/tontap/ton_tap_bot/internal/web"
	"github.com/tontap/ton_tap_bot/pkg/logger"
	"github.com/tontap/ton_tap_bot/telegram"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize logger
	logger.Init()
	defer logger.Sync()

	logger.Info("Starting TON tap bot...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	// Validate production security settings
	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProductionSecurity(); err != nil {
			logger.Fatal("Production security validation failed", err)
		}
		logger.Info("Production security validation passed")
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	// Run GORM auto-migration
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories and handlers shared by both transports
	userRepo := repositories.NewUserRepository(db)
	rewardRepo := repositories.NewRewardRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	handlerMgr := handlers.NewHandlerManager(cfg, db, userRepo, rewardRepo, txRepo)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerUser, cfg.RateLimitPerIP, time.Minute)

	// Initialize and start Telegram bot
	bot, err := telegram.InitBot(cfg, handlerMgr, limiter)
	if err != nil {
		logger.Fatal("Failed to initialize bot", err)
	}

	// Start the companion game web server
	server := web.NewServer(cfg, handlerMgr, limiter)
	go func() {
		if err := server.Listen(":" + cfg.AppPort); err != nil {
			logger.Fatal("Web server failed", err)
		}
	}()

	logger.Info("Bot started successfully", "env", cfg.AppEnv, "port", cfg.AppPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	bot.Stop()
	if err := server.Shutdown(); err != nil {
		logger.Error("Web server shutdown error", "error", err)
	}
	logger.Info("Stopped")
}
