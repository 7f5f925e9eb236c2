package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/careerlens/api/http/presenter"
	"github.com/artem13815/careerlens/pkg/career"
	"github.com/artem13815/careerlens/pkg/resume"
	"github.com/artem13815/careerlens/pkg/session"
)

type clientConfig struct {
	MaxResumeChars     int           `json:"maxResumeChars"`
	MaxFileMB          int           `json:"maxFileMB"`
	MaxImageMB         int           `json:"maxImageMB"`
	AutofillMinChars   int           `json:"autofillMinChars"`
	AcceptedExtensions []string      `json:"acceptedExtensions"`
	ExperienceLevels   any           `json:"experienceLevels"`
	Modes              []career.Mode `json:"modes"`
	LoadingMessages    []string      `json:"loadingMessages"`
	LoadingIntervalMS  int64         `json:"loadingIntervalMs"`
	RevealDurationMS   int64         `json:"revealDurationMs"`
}

// Config returns the limits and options the form renders.
// @Summary Client configuration
// @Tags    config
// @Produce json
// @Success 200 {object} clientConfig
// @Router  /config [get]
func Config(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, clientConfig{
		MaxResumeChars:     resume.MaxResumeChars,
		MaxFileMB:          resume.MaxFileMB,
		MaxImageMB:         resume.MaxImageMB,
		AutofillMinChars:   resume.AutofillMinChars,
		AcceptedExtensions: resume.AcceptedExtensions,
		ExperienceLevels:   career.ExperienceLevels,
		Modes:              []career.Mode{career.ModeFast, career.ModeSearch, career.ModeDeep},
		LoadingMessages:    session.LoadingMessages,
		LoadingIntervalMS:  session.LoadingInterval.Milliseconds(),
		RevealDurationMS:   session.RevealDuration.Milliseconds(),
	})
}
