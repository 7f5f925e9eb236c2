// Package coach generates the per-card extras: interview questions and a
// cover letter draft.
package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/artem13815/careerlens/pkg/career"
	"github.com/artem13815/careerlens/pkg/llm"
	"github.com/artem13815/careerlens/pkg/nlp"
)

var (
	ErrPrepFailed   = errors.New("Could not generate interview questions.")
	ErrLetterFailed = errors.New("Could not generate cover letter.")
)

// resumeSnippetChars bounds how much résumé text the prompts carry.
const resumeSnippetChars = 3000

type UseCase interface {
	InterviewPrep(ctx context.Context, role, resumeText string) (career.InterviewPrep, error)
	CoverLetter(ctx context.Context, role, resumeText string) (string, error)
}

type service struct {
	llm       llm.Model
	modelName string
}

func NewService(model llm.Model, modelName string) UseCase {
	return &service{llm: model, modelName: modelName}
}

func (s *service) InterviewPrep(ctx context.Context, role, resumeText string) (career.InterviewPrep, error) {
	if s.llm == nil {
		return career.InterviewPrep{}, ErrPrepFailed
	}
	raw, err := llm.Ask(ctx, s.llm, s.modelName, "", prepPrompt(role, snippet(resumeText)), true)
	if err != nil {
		log.Printf("coach: interview prep for %q: %v", role, err)
		return career.InterviewPrep{}, fmt.Errorf("%w: %v", ErrPrepFailed, err)
	}
	var p career.InterviewPrep
	if err := json.Unmarshal([]byte(llm.StripFences(raw)), &p); err != nil {
		log.Printf("coach: interview prep for %q: bad JSON: %v", role, err)
		return career.InterviewPrep{}, fmt.Errorf("%w: %v", ErrPrepFailed, err)
	}
	return sanitizePrep(p, resumeText), nil
}

func (s *service) CoverLetter(ctx context.Context, role, resumeText string) (string, error) {
	if s.llm == nil {
		return "", ErrLetterFailed
	}
	raw, err := llm.Ask(ctx, s.llm, s.modelName, "", letterPrompt(role, snippet(resumeText)), false)
	if err != nil {
		log.Printf("coach: cover letter for %q: %v", role, err)
		return "", fmt.Errorf("%w: %v", ErrLetterFailed, err)
	}
	letter := llm.StripFences(raw)
	if letter == "" {
		return "", fmt.Errorf("%w: empty response", ErrLetterFailed)
	}
	return letter, nil
}

// sanitizePrep drops blank questions, coerces unknown types to Behavioral
// and removes missing keywords the résumé actually mentions.
func sanitizePrep(p career.InterviewPrep, resumeText string) career.InterviewPrep {
	qs := make([]career.InterviewQuestion, 0, len(p.Questions))
	for _, q := range p.Questions {
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		if q.Type != career.QuestionTechnical {
			q.Type = career.QuestionBehavioral
		}
		qs = append(qs, q)
	}
	p.Questions = qs
	p.MissingKeywords = nlp.Missing(resumeText, p.MissingKeywords)
	return p
}

func snippet(text string) string {
	if r := []rune(text); len(r) > resumeSnippetChars {
		return string(r[:resumeSnippetChars])
	}
	return text
}
