package web

import (
	"embed"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/tontap/ton_tap_bot/internal/config"
	"github.com/tontap/ton_tap_bot/internal/handlers"
	"github.com/tontap/ton_tap_bot/internal/middleware"
	"github.com/tontap/ton_tap_bot/pkg/logger"
)

//go:embed static
var staticFS embed.FS

// Server is the companion web game front door: it serves the game page and
// accepts score claims signed with a game session token.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	handlers *handlers.HandlerManager
	limiter  *middleware.RateLimiter
}

func NewServer(cfg *config.Config, hm *handlers.HandlerManager, limiter *middleware.RateLimiter) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "ton-tap-bot",
		DisableStartupMessage: cfg.AppEnv == "production",
	})

	s := &Server{
		app:      app,
		cfg:      cfg,
		handlers: hm,
		limiter:  limiter,
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Use(func(c *fiber.Ctx) error {
		if !s.limiter.CheckIPLimit(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Too many requests",
			})
		}
		return c.Next()
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/api/claim-reward", s.handleClaimReward)

	app.Use("/game", filesystem.New(filesystem.Config{
		Root:       http.FS(staticFS),
		PathPrefix: "static",
		Index:      "game.html",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString("<h1>TON Bot Server Running OK</h1>")
	})

	return s
}

// Listen blocks serving HTTP on the given address
func (s *Server) Listen(addr string) error {
	logger.Info("Web server starting", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
