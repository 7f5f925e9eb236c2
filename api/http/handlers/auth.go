package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/careerlens/api/http/presenter"
	"github.com/artem13815/careerlens/pkg/auth"
	"github.com/artem13815/careerlens/pkg/security/jwt"
	"github.com/artem13815/careerlens/pkg/session"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
	// Query is the page query string, e.g. "city=Pune&experienceLevel=fresher".
	Query string `json:"query" validate:"max=512"`
}

type loginResponse struct {
	ID      string           `json:"id"`
	Email   string           `json:"email"`
	Token   string           `json:"token"`
	Session session.Snapshot `json:"session"`
}

// Login handles the mocked login: any valid email gets a fresh session.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} loginResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if msg, ok := bind(c, &req); !ok {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}

	result, err := h.useCase.Login(c.UserContext(), auth.LoginRequest{
		Email: req.Email,
		Theme: themeFromCookie(c),
		Query: req.Query,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidEmail) {
			return presenter.Error(c, http.StatusBadRequest, "email must be a valid email address")
		}
		log.Printf("login: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, loginResponse{
		ID:      result.User.ID.String(),
		Email:   result.User.Email,
		Token:   result.Token,
		Session: result.Session.Snapshot(),
	})
}

// Logout closes the caller's session.
// @Summary Logout
// @Tags    auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	id, _ := c.Locals(jwt.LocalSessionID).(string)
	email, _ := c.Locals(jwt.LocalEmail).(string)
	if err := h.useCase.Logout(c.UserContext(), id); err != nil {
		log.Printf("logout %s: %v", email, err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to logout")
	}
	return c.SendStatus(http.StatusNoContent)
}
