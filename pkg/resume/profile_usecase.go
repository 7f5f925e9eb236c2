package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/artem13815/careerlens/pkg/career"
	"github.com/artem13815/careerlens/pkg/llm"
)

// ProfileExtractor infers form fields from résumé text. It is advisory:
// ok is false on any failure and the caller keeps its current values.
type ProfileExtractor interface {
	Extract(ctx context.Context, resumeText string) (meta Metadata, ok bool)
}

type profileService struct {
	llm       llm.Model
	modelName string
	maxChars  int
}

func NewProfileService(model llm.Model, modelName string) ProfileExtractor {
	return &profileService{
		llm:       model,
		modelName: modelName,
		maxChars:  5000,
	}
}

const profileSystemPrompt = "You extract structured facts from resumes for an Indian job-search assistant. Respond with a single JSON object only."

type profilePayload struct {
	City            string          `json:"city"`
	ExperienceLevel string          `json:"experienceLevel"`
	YearsExperience json.RawMessage `json:"yearsExperience"`
	FocusArea       string          `json:"focusArea"`
}

func (s *profileService) Extract(ctx context.Context, resumeText string) (Metadata, bool) {
	text := strings.TrimSpace(resumeText)
	if text == "" || s.llm == nil {
		return Metadata{}, false
	}
	if r := []rune(text); len(r) > s.maxChars {
		text = string(r[:s.maxChars])
	}

	raw, err := llm.Ask(ctx, s.llm, s.modelName, profileSystemPrompt, buildProfilePrompt(text), true)
	if err != nil {
		log.Printf("profile autofill: request failed: %v", err)
		return Metadata{}, false
	}
	var p profilePayload
	if err := json.Unmarshal([]byte(llm.StripFences(raw)), &p); err != nil {
		log.Printf("profile autofill: bad JSON: %v", err)
		return Metadata{}, false
	}

	city := strings.TrimSpace(p.City)
	if city != "" && city == strings.ToLower(city) {
		// Casers are stateful; one per call.
		city = cases.Title(language.English).String(city)
	}
	return Metadata{
		City:            city,
		ExperienceLevel: career.NormalizeExperienceLevel(p.ExperienceLevel),
		YearsExperience: years(p.YearsExperience),
		FocusArea:       strings.TrimSpace(p.FocusArea),
	}, true
}

func buildProfilePrompt(text string) string {
	levels := make([]string, 0, len(career.ExperienceLevels))
	for _, l := range career.ExperienceLevels {
		levels = append(levels, fmt.Sprintf("'%s'", l.Value))
	}
	return fmt.Sprintf(`Analyze the following resume/profile text and extract key details into a JSON object.

Output JSON Schema:
{
  "city": "string (inferred current location, e.g. 'Bengaluru', or empty if unknown)",
  "experienceLevel": "string (one of: %s)",
  "yearsExperience": "string (numeric string e.g. '4', or empty)",
  "focusArea": "string (main role/industry e.g. 'Frontend Dev', 'Marketing')"
}

Rules:
- 'student': Still in college or looking for internship.
- 'fresher': Graduated, 0-1 years exp.
- 'early-career': 1 to 3 years.
- 'mid-career': 3 years or more.
- 'career-switcher': Moving into a different field than their experience.

Text to Analyze:
%s
`, strings.Join(levels, ", "), text)
}

// years accepts either a JSON string or number.
func years(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}
