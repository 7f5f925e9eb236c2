package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/careerlens/api/http/presenter"
	"github.com/artem13815/careerlens/pkg/career"
	"github.com/artem13815/careerlens/pkg/resume"
	"github.com/artem13815/careerlens/pkg/security/jwt"
	"github.com/artem13815/careerlens/pkg/session"
)

// SessionFinder resolves the session named by the token subject.
type SessionFinder interface {
	Get(id string) (*session.Session, error)
}

type SessionHandler struct {
	sessions SessionFinder
}

func NewSessionHandler(sessions SessionFinder) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// session resolves the caller's session. A token only opens the session
// of the user it was issued to.
func (h *SessionHandler) session(c *fiber.Ctx) (*session.Session, error) {
	id, _ := c.Locals(jwt.LocalSessionID).(string)
	s, err := h.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	if email, _ := c.Locals(jwt.LocalEmail).(string); !strings.EqualFold(email, s.App().User()) {
		return nil, session.ErrNotFound
	}
	return s, nil
}

// withSession resolves the caller's session, runs fn and answers with the
// resulting snapshot.
func (h *SessionHandler) withSession(c *fiber.Ctx, status int, fn func(*session.Session) error) error {
	s, err := h.session(c)
	if err != nil {
		return sessionError(c, err)
	}
	if fn != nil {
		if err := fn(s); err != nil {
			return sessionError(c, err)
		}
	}
	return presenter.JSON(c, status, s.Snapshot())
}

// sessionError maps domain errors to responses.
func sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return presenter.Error(c, http.StatusUnauthorized, "session expired, please log in again")
	case errors.Is(err, career.ErrEmptyInput):
		return presenter.Error(c, http.StatusBadRequest, session.MissingInputMessage)
	case errors.Is(err, resume.ErrFileTooLarge):
		return presenter.Error(c, http.StatusRequestEntityTooLarge, resume.UserMessage(err))
	case errors.Is(err, resume.ErrUnsupportedFile):
		return presenter.Error(c, http.StatusBadRequest, resume.UserMessage(err))
	case errors.Is(err, resume.ErrPDFExtraction), errors.Is(err, resume.ErrTextRead):
		return presenter.Error(c, http.StatusUnprocessableEntity, resume.UserMessage(err))
	case errors.Is(err, session.ErrInputLocked):
		return presenter.Error(c, http.StatusConflict, "input cannot change while results are shown or analysis is running")
	case errors.Is(err, session.ErrAlreadyRunning):
		return presenter.Error(c, http.StatusConflict, "analysis is already running")
	case errors.Is(err, session.ErrInvalidTransition), errors.Is(err, session.ErrNoResults):
		return presenter.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrCardNotFound):
		return presenter.Error(c, http.StatusNotFound, "card not found")
	case errors.Is(err, session.ErrUnknownPanel), errors.Is(err, session.ErrUnknownTab):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("session request failed: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
}

// Get returns the caller's view state.
// @Summary Session snapshot
// @Tags    session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} session.Snapshot
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return h.withSession(c, http.StatusOK, nil)
}

type inputRequest struct {
	ResumeText      *string `json:"resumeText"`
	City            *string `json:"city" validate:"omitempty,max=100"`
	ExperienceLevel *string `json:"experienceLevel" validate:"omitempty,oneof=student fresher early-career mid-career career-switcher"`
	YearsExperience *string `json:"yearsExperience" validate:"omitempty,max=20"`
	Mode            *string `json:"mode" validate:"omitempty,oneof=fast search deep"`
	MoreRoles       *bool   `json:"moreRoles"`
}

// UpdateInput edits the form. Omitted fields keep their value.
// @Summary Edit form input
// @Tags    session
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body inputRequest true "fields to change"
// @Success 200 {object} session.Snapshot
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /session/input [put]
func (h *SessionHandler) UpdateInput(c *fiber.Ctx) error {
	var req inputRequest
	if msg, ok := bind(c, &req); !ok {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}
	return h.withSession(c, http.StatusOK, func(s *session.Session) error {
		return s.UpdateInput(session.InputPatch{
			ResumeText:      req.ResumeText,
			City:            req.City,
			ExperienceLevel: req.ExperienceLevel,
			YearsExperience: req.YearsExperience,
			Mode:            req.Mode,
			MoreRoles:       req.MoreRoles,
		})
	})
}

// Upload reads a résumé file (.txt, .pdf or an image) into the form.
// @Summary Upload résumé
// @Description Text and PDF files replace the résumé text and may start metadata autofill. Images are attached for analysis.
// @Tags    session
// @Accept  multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param   file   formData file   true  "résumé file"
// @Param   source formData string false "profile when the file came from a profile link"
// @Success 200 {object} session.Snapshot
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 413 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /session/upload [post]
func (h *SessionHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, resume.MaxImageBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	u := resume.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Data:        data,
	}
	fromProfile := c.FormValue("source") == "profile"
	return h.withSession(c, http.StatusOK, func(s *session.Session) error {
		_, err := s.Upload(c.UserContext(), u, fromProfile)
		return err
	})
}

// readAtMost reads up to max+1 bytes. Anything past that is left unread;
// the declared size still reports the file as too large.
func readAtMost(f multipart.File, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return b, nil
}

// RemoveImage drops the attached image.
// @Summary Remove image
// @Tags    session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} session.Snapshot
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /session/image [delete]
func (h *SessionHandler) RemoveImage(c *fiber.Ctx) error {
	return h.withSession(c, http.StatusOK, func(s *session.Session) error {
		return s.RemoveImage()
	})
}

// Analyze starts the analysis. Poll GET /session for the outcome.
// @Summary Start analysis
// @Tags    session
// @Produce json
// @Security BearerAuth
// @Success 202 {object} session.Snapshot
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Router  /session/analyze [post]
func (h *SessionHandler) Analyze(c *fiber.Ctx) error {
	return h.withSession(c, http.StatusAccepted, func(s *session.Session) error {
		return s.Analyze()
	})
}

// Reset returns to the empty form, dropping any running work.
// @Summary Reset
// @Tags    session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} session.Snapshot
// @Router  /session/reset [post]
func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	return h.withSession(c, http.StatusOK, func(s *session.Session) error {
		s.Reset()
		return nil
	})
}

type sortRequest struct {
	Key   string `json:"key" validate:"required,oneof=match demand"`
	Order string `json:"order" validate:"required,oneof=asc desc"`
}

// Sort changes the order of the job cards.
// @Summary Sort cards
// @Tags    session
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body sortRequest true "sort settings"
// @Success 200 {object} session.Snapshot
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /session/sort [put]
func (h *SessionHandler) Sort(c *fiber.Ctx) error {
	var req sortRequest
	if msg, ok := bind(c, &req); !ok {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}
	so, err := career.ParseSorting(req.Key, req.Order)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return h.withSession(c, http.StatusOK, func(s *session.Session) error {
		s.SetSorting(so)
		return nil
	})
}

type tabRequest struct {
	Tab string `json:"tab" validate:"required,oneof=jobs resume"`
}

// Tab switches between the job cards and the résumé audit.
// @Summary Switch tab
// @Tags    session
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body tabRequest true "tab"
// @Success 200 {object} session.Snapshot
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /session/tab [put]
func (h *SessionHandler) Tab(c *fiber.Ctx) error {
	var req tabRequest
	if msg, ok := bind(c, &req); !ok {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}
	return h.withSession(c, http.StatusOK, func(s *session.Session) error {
		return s.SetTab(session.Tab(req.Tab))
	})
}

// SetTheme changes the session theme and remembers it in the cookie.
// @Summary Set session theme
// @Tags    session
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body themeRequest true "theme"
// @Success 200 {object} session.Snapshot
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /session/theme [put]
func (h *SessionHandler) SetTheme(c *fiber.Ctx) error {
	var req themeRequest
	if msg, ok := bind(c, &req); !ok {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}
	return h.withSession(c, http.StatusOK, func(s *session.Session) error {
		t := session.ParseTheme(req.Theme)
		s.App().SetTheme(t)
		setThemeCookie(c, t)
		return nil
	})
}

// ToggleTheme flips the session theme between light and dark.
// @Summary Toggle session theme
// @Tags    session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} session.Snapshot
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /session/theme/toggle [post]
func (h *SessionHandler) ToggleTheme(c *fiber.Ctx) error {
	return h.withSession(c, http.StatusOK, func(s *session.Session) error {
		setThemeCookie(c, s.App().ToggleTheme())
		return nil
	})
}

// Expand shows or hides a card's details.
// @Summary Toggle card details
// @Tags    cards
// @Produce json
// @Security BearerAuth
// @Param   index path int true "card index"
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /session/cards/{index}/expand [post]
func (h *SessionHandler) Expand(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "index must be a number")
	}
	return h.withSession(c, http.StatusOK, func(s *session.Session) error {
		return s.ToggleExpanded(index)
	})
}

// Prep toggles the interview prep panel of a card.
// @Summary Toggle interview prep
// @Tags    cards
// @Produce json
// @Security BearerAuth
// @Param   index path int true "card index"
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Router  /session/cards/{index}/prep [post]
func (h *SessionHandler) Prep(c *fiber.Ctx) error {
	return h.togglePanel(c, session.PanelPrep)
}

// Letter toggles the cover letter panel of a card.
// @Summary Toggle cover letter
// @Tags    cards
// @Produce json
// @Security BearerAuth
// @Param   index path int true "card index"
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Router  /session/cards/{index}/letter [post]
func (h *SessionHandler) Letter(c *fiber.Ctx) error {
	return h.togglePanel(c, session.PanelLetter)
}

func (h *SessionHandler) togglePanel(c *fiber.Ctx, p session.Panel) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "index must be a number")
	}
	return h.withSession(c, http.StatusOK, func(s *session.Session) error {
		_, err := s.TogglePanel(index, p)
		return err
	})
}
