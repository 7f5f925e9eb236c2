package resume

import (
	"strings"

	"github.com/artem13815/careerlens/pkg/career"
)

// Metadata is what autofill infers from résumé text. Empty fields mean
// "unknown" and never overwrite what the user already entered.
type Metadata struct {
	City            string                 `json:"city"`
	ExperienceLevel career.ExperienceLevel `json:"experienceLevel"`
	YearsExperience string                 `json:"yearsExperience"`
	FocusArea       string                 `json:"focusArea"`
}

// ApplyTo merges the metadata into in.
func (m Metadata) ApplyTo(in *career.UserInput) {
	if c := strings.TrimSpace(m.City); c != "" {
		in.City = c
	}
	if m.ExperienceLevel != "" {
		in.ExperienceLevel = m.ExperienceLevel
	}
	if y := strings.TrimSpace(m.YearsExperience); y != "" {
		in.YearsExperience = y
	}
}
