package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/careerlens/api/http/handlers"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler
	Preferences *handlers.PreferencesHandler
	Session     *handlers.SessionHandler
}

// Register wires all HTTP routes onto given Fiber app. authMW guards the
// session routes; aiLimit throttles the routes that call the model.
func Register(app *fiber.App, h Handlers, authMW, aiLimit fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)
	v1.Get("/config", handlers.Config)

	a := v1.Group("/auth")
	a.Post("/login", h.Auth.Login)
	a.Post("/logout", authMW, h.Auth.Logout)

	p := v1.Group("/preferences")
	p.Get("/theme", h.Preferences.Theme)
	p.Put("/theme", h.Preferences.SetTheme)

	s := v1.Group("/session", authMW)
	s.Get("", h.Session.Get)
	s.Put("/input", h.Session.UpdateInput)
	s.Post("/upload", aiLimit, h.Session.Upload)
	s.Delete("/image", h.Session.RemoveImage)
	s.Post("/analyze", aiLimit, h.Session.Analyze)
	s.Post("/reset", h.Session.Reset)
	s.Put("/sort", h.Session.Sort)
	s.Put("/tab", h.Session.Tab)
	s.Put("/theme", h.Session.SetTheme)
	s.Post("/theme/toggle", h.Session.ToggleTheme)

	cards := s.Group("/cards/:index")
	cards.Post("/expand", h.Session.Expand)
	cards.Post("/prep", aiLimit, h.Session.Prep)
	cards.Post("/letter", aiLimit, h.Session.Letter)
}
