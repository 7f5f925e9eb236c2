package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/artem13815/careerlens/pkg/career"
	"github.com/artem13815/careerlens/pkg/llm"
)

// Parse turns raw model text into an Analysis. Fencing around the JSON is
// stripped first. Only text that is not a JSON object fails; fields of the
// wrong type are reset and then defaulted like missing ones. Grounding
// chunks are only used in search mode; every other mode gets an empty
// grounding list.
func Parse(raw string, mode career.Mode, grounding []llm.GroundingChunk) (career.Analysis, error) {
	text := llm.StripFences(raw)
	if text == "" {
		return career.Analysis{}, ErrEmptyResponse
	}
	doc := []byte(text)
	if !json.Valid(doc) {
		return career.Analysis{}, fmt.Errorf("%w: not valid JSON", ErrMalformedResponse)
	}
	doc, err := repair(doc)
	if err != nil {
		return career.Analysis{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var a career.Analysis
	if err := json.Unmarshal(doc, &a); err != nil {
		return career.Analysis{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	sanitize(&a)

	a.GroundingURLs = []career.GroundingURL{}
	if mode == career.ModeSearch {
		a.GroundingURLs = groundingURLs(grounding)
	}
	return a, nil
}

func groundingURLs(chunks []llm.GroundingChunk) []career.GroundingURL {
	out := make([]career.GroundingURL, 0, len(chunks))
	for _, c := range chunks {
		if c.Web == nil || c.Web.URI == "" {
			continue
		}
		out = append(out, career.GroundingURL{URI: c.Web.URI, Title: c.Web.Title})
	}
	return out
}

// sanitize fills defaults so consumers never see nil lists or
// out-of-range values.
func sanitize(a *career.Analysis) {
	if a.Flashcards == nil {
		a.Flashcards = []career.JobCard{}
	}
	for i := range a.Flashcards {
		c := &a.Flashcards[i]
		c.DemandLevel = normalizeDemand(c.DemandLevel)
		c.MatchScore = c.MatchScore.Clamp()
		c.WhatYouDoInThisJob = list(c.WhatYouDoInThisJob)
		c.SkillsYouAlreadyHave = list(c.SkillsYouAlreadyHave)
		c.SkillsToBuildNext = list(c.SkillsToBuildNext)
		c.FirstStepsToGetStarted = list(c.FirstStepsToGetStarted)
		c.RecommendedCertification = list(c.RecommendedCertification)
		if c.GoogleJobSearchURL == "" && c.GoogleJobSearchQuery != "" {
			c.GoogleJobSearchURL = career.GoogleJobsURL(c.GoogleJobSearchQuery)
		}
	}
	if au := a.ResumeAudit; au != nil {
		au.ATSCompatibilityScore = au.ATSCompatibilityScore.Clamp()
		au.FormattingIssues = list(au.FormattingIssues)
		au.ContentImprovements = list(au.ContentImprovements)
		au.KeyStrengths = list(au.KeyStrengths)
	}
}

func normalizeDemand(d career.DemandLevel) career.DemandLevel {
	switch strings.ToLower(strings.TrimSpace(string(d))) {
	case "high":
		return career.DemandHigh
	case "low":
		return career.DemandLow
	default:
		return career.DemandMedium
	}
}

// list drops blank entries and never returns nil.
func list(s []string) []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
