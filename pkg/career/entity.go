package career

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
)

// ErrEmptyInput is returned when neither résumé text nor an image is present.
var ErrEmptyInput = errors.New("resume text or image is required")

// Mode selects the analysis strategy.
type Mode string

const (
	ModeFast   Mode = "fast"
	ModeSearch Mode = "search"
	ModeDeep   Mode = "deep"
)

// ParseMode validates a mode string. Empty input maps to ModeFast.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeFast, nil
	case ModeFast, ModeSearch, ModeDeep:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// ExperienceLevel is one of the form's fixed options.
type ExperienceLevel string

const (
	LevelStudent        ExperienceLevel = "student"
	LevelFresher        ExperienceLevel = "fresher"
	LevelEarlyCareer    ExperienceLevel = "early-career"
	LevelMidCareer      ExperienceLevel = "mid-career"
	LevelCareerSwitcher ExperienceLevel = "career-switcher"
)

// ExperienceLevels lists the options in display order.
var ExperienceLevels = []struct {
	Value ExperienceLevel `json:"value"`
	Label string          `json:"label"`
}{
	{LevelStudent, "Student / Intern"},
	{LevelFresher, "Fresher (0-1 Years)"},
	{LevelEarlyCareer, "Early Career (1-3 Years)"},
	{LevelMidCareer, "Mid Career (3-5 Years)"},
	{LevelCareerSwitcher, "Career Switcher"},
}

// NormalizeExperienceLevel coerces anything outside the enum to LevelFresher.
func NormalizeExperienceLevel(s string) ExperienceLevel {
	l := ExperienceLevel(strings.ToLower(strings.TrimSpace(s)))
	for _, opt := range ExperienceLevels {
		if opt.Value == l {
			return l
		}
	}
	return LevelFresher
}

// Image is an inline image payload (base64 without the data URL prefix).
type Image struct {
	Data     string `json:"data"`
	MIMEType string `json:"mimeType"`
}

// UserInput is everything the analysis request is built from.
type UserInput struct {
	ResumeText      string          `json:"resumeText"`
	City            string          `json:"city"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	YearsExperience string          `json:"yearsExperience"`
	Mode            Mode            `json:"mode"`
	MoreRoles       bool            `json:"moreRoles"`
	Image           *Image          `json:"image,omitempty"`
}

// Defaults returns the input a fresh form starts with.
func Defaults() UserInput {
	return UserInput{
		ExperienceLevel: LevelFresher,
		Mode:            ModeFast,
	}
}

// HasImage reports whether an image payload is attached.
func (in UserInput) HasImage() bool {
	return in.Image != nil && in.Image.Data != ""
}

// Validate checks the only hard precondition of an analysis request.
func (in UserInput) Validate() error {
	if strings.TrimSpace(in.ResumeText) == "" && !in.HasImage() {
		return ErrEmptyInput
	}
	return nil
}

// DemandLevel is the model's estimate of market demand for a role.
type DemandLevel string

const (
	DemandHigh   DemandLevel = "High"
	DemandMedium DemandLevel = "Medium"
	DemandLow    DemandLevel = "Low"
)

// Ordinal maps High=3, Medium=2, Low=1; unknown values count as Medium.
func (d DemandLevel) Ordinal() int {
	switch d {
	case DemandHigh:
		return 3
	case DemandLow:
		return 1
	default:
		return 2
	}
}

// Score is a 0-100 rating. Models sometimes emit fractional or quoted
// numbers, so decoding rounds and accepts numeric strings such as "72",
// "85%" or "85/100".
type Score int

func (s *Score) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		var str string
		if json.Unmarshal(b, &str) != nil {
			return fmt.Errorf("score: %w", err)
		}
		str = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(str), "%"))
		if before, _, ok := strings.Cut(str, "/"); ok {
			str = strings.TrimSpace(before)
		}
		n := json.Number(str)
		if f, err = n.Float64(); err != nil {
			return fmt.Errorf("score: %w", err)
		}
	}
	*s = Score(math.Round(f))
	return nil
}

// Clamp bounds the score to 0-100.
func (s Score) Clamp() Score {
	switch {
	case s < 0:
		return 0
	case s > 100:
		return 100
	}
	return s
}

// JobCard is one recommended role ("flashcard").
type JobCard struct {
	JobTitle                 string      `json:"job_title"`
	DemandLevel              DemandLevel `json:"demand_level"`
	MatchScore               Score       `json:"match_score"`
	ExperienceTarget         string      `json:"experience_target"`
	WhyItMatches             string      `json:"why_it_matches"`
	WhatYouDoInThisJob       []string    `json:"what_you_do_in_this_job"`
	SkillsYouAlreadyHave     []string    `json:"skills_you_already_have"`
	SkillsToBuildNext        []string    `json:"skills_to_build_next"`
	FirstStepsToGetStarted   []string    `json:"first_steps_to_get_started"`
	EstimatedSalary          string      `json:"estimated_salary_expectation"`
	RecommendedCertification []string    `json:"recommended_certifications"`
	GoogleJobSearchQuery     string      `json:"google_job_search_query"`
	GoogleJobSearchURL       string      `json:"google_job_search_url"`
	RiskOrCautionNote        string      `json:"risk_or_caution_note"`
}

// GroundingURL is a web source cited by a search-augmented answer.
type GroundingURL struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// ResumeAudit is the ATS-oriented quality check of the résumé.
type ResumeAudit struct {
	ATSCompatibilityScore Score    `json:"ats_compatibility_score"`
	FormattingIssues      []string `json:"formatting_issues"`
	ContentImprovements   []string `json:"content_improvements"`
	KeyStrengths          []string `json:"key_strengths"`
}

// ATSLabel buckets a score the way the audit dashboard shows it.
func ATSLabel(score Score) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	default:
		return "Needs Work"
	}
}

// Analysis is the structured result of one analysis request.
type Analysis struct {
	SummaryOfProfile string         `json:"summary_of_profile"`
	Flashcards       []JobCard      `json:"flashcards"`
	OverallAdvice    string         `json:"overall_advice"`
	Disclaimer       string         `json:"disclaimer"`
	GroundingURLs    []GroundingURL `json:"grounding_urls"`
	ResumeAudit      *ResumeAudit   `json:"resume_audit,omitempty"`
}

// QuestionType classifies an interview question.
type QuestionType string

const (
	QuestionTechnical  QuestionType = "Technical"
	QuestionBehavioral QuestionType = "Behavioral"
)

type InterviewQuestion struct {
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Tip      string       `json:"tip"`
}

// InterviewPrep is the per-card interview preparation panel content.
type InterviewPrep struct {
	Questions       []InterviewQuestion `json:"questions"`
	MissingKeywords []string            `json:"missing_keywords"`
}

// LinkedInURL is the LinkedIn jobs search for the card's query.
func (c JobCard) LinkedInURL() string {
	return "https://www.linkedin.com/jobs/search/?keywords=" + url.QueryEscape(c.GoogleJobSearchQuery)
}

// GoogleJobsURL builds a Google jobs search URL for a query.
func GoogleJobsURL(query string) string {
	return "https://www.google.com/search?ibp=htl;jobs&q=" + url.QueryEscape(query)
}
