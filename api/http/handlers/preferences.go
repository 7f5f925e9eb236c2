package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/careerlens/api/http/presenter"
	"github.com/artem13815/careerlens/pkg/session"
)

// ThemeCookie holds the light/dark preference across visits.
const ThemeCookie = "theme"

func themeFromCookie(c *fiber.Ctx) session.Theme {
	return session.ParseTheme(c.Cookies(ThemeCookie))
}

func setThemeCookie(c *fiber.Ctx, t session.Theme) {
	c.Cookie(&fiber.Cookie{
		Name:     ThemeCookie,
		Value:    string(t),
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

type PreferencesHandler struct{}

func NewPreferencesHandler() *PreferencesHandler { return &PreferencesHandler{} }

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type themeResponse struct {
	Theme session.Theme `json:"theme"`
}

// Theme returns the stored theme, light when none was chosen.
// @Summary Current theme
// @Tags    preferences
// @Produce json
// @Success 200 {object} themeResponse
// @Router  /preferences/theme [get]
func (h *PreferencesHandler) Theme(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, themeResponse{Theme: themeFromCookie(c)})
}

// SetTheme stores the theme in a cookie.
// @Summary Set theme
// @Tags    preferences
// @Accept  json
// @Produce json
// @Param   input body themeRequest true "theme"
// @Success 200 {object} themeResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /preferences/theme [put]
func (h *PreferencesHandler) SetTheme(c *fiber.Ctx) error {
	var req themeRequest
	if msg, ok := bind(c, &req); !ok {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}
	t := session.ParseTheme(req.Theme)
	setThemeCookie(c, t)
	return presenter.JSON(c, http.StatusOK, themeResponse{Theme: t})
}
