// @title         CareerLens API
// @version       1.0
// @description   Career guidance service: reads a résumé (text, PDF or image), asks a generative model for suitable job roles with match scores and an ATS audit, and prepares interview questions and cover letters per role.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token. Both "Bearer <JWT>" and "<JWT>" are accepted.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/careerlens/api/http"
	"github.com/artem13815/careerlens/api/http/handlers"
	"github.com/artem13815/careerlens/api/http/presenter"
	_ "github.com/artem13815/careerlens/docs"
	"github.com/artem13815/careerlens/pkg/analysis"
	"github.com/artem13815/careerlens/pkg/auth"
	"github.com/artem13815/careerlens/pkg/coach"
	"github.com/artem13815/careerlens/pkg/config"
	"github.com/artem13815/careerlens/pkg/health"
	"github.com/artem13815/careerlens/pkg/health/checkers"
	"github.com/artem13815/careerlens/pkg/llm"
	"github.com/artem13815/careerlens/pkg/llm/gemini"
	"github.com/artem13815/careerlens/pkg/llm/openrouter"
	"github.com/artem13815/careerlens/pkg/resume"
	"github.com/artem13815/careerlens/pkg/security/jwt"
	"github.com/artem13815/careerlens/pkg/session"
)

func main() {
	// Load configuration from defaults, configs/config.yaml and env/.env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.APIKey() == "" {
		log.Printf("warning: no API key configured for %s, analysis requests will fail", cfg.LLMProvider)
	}

	var model llm.Model
	switch cfg.LLMProvider {
	case "openrouter":
		model = openrouter.New(cfg.OpenRouterAPIKey, cfg.OpenRouterBase, cfg.OpenRouterAppTitle, cfg.OpenRouterReferer)
	default:
		model = gemini.New(cfg.GeminiAPIKey, cfg.GeminiBaseURL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sessions own the analysis flow; the services below are what they call.
	store := session.NewStore(session.Deps{
		Analyzer: analysis.NewService(model, analysis.Models{Fast: cfg.ModelFast, Deep: cfg.ModelDeep}),
		Profiles: resume.NewProfileService(model, cfg.ModelFast),
		Coach:    coach.NewService(model, cfg.ModelFast),
	}, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	storeDone := make(chan struct{})
	go func() {
		store.Run(ctx, time.Minute)
		close(storeDone)
	}()

	// Token generator
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authUC := auth.NewAuthService(store, jwtGen)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewLLMChecker(cfg.LLMProvider, cfg.APIKey()))

	// JWT auth middleware for protected routes
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	aiLimit := limiter.New(limiter.Config{
		Max:        cfg.RateLimitAIPerMin,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if id, ok := c.Locals(jwt.LocalSessionID).(string); ok && id != "" {
				return id
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return presenter.Error(c, fiber.StatusTooManyRequests, "too many requests, please try again in a minute")
		},
	})

	app := fiber.New(fiber.Config{
		AppName: "careerlens",
		// Images may be up to 4MB; leave room for multipart framing.
		BodyLimit: 8 << 20,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Register routes
	http.Register(app, http.Handlers{
		Auth:        handlers.NewAuthHandler(authUC),
		Health:      handlers.NewHealthHandler(readiness),
		Preferences: handlers.NewPreferencesHandler(),
		Session:     handlers.NewSessionHandler(store),
	}, authMW, aiLimit)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s (provider %s)", port, cfg.LLMProvider)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
	stop()
	<-storeDone
	log.Printf("sessions closed, bye")
}
