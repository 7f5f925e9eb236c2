package analysis

import (
	"context"
	"errors"
	"log"

	"github.com/artem13815/careerlens/pkg/career"
	"github.com/artem13815/careerlens/pkg/llm"
)

// UseCase runs the primary résumé analysis.
type UseCase interface {
	Analyze(ctx context.Context, in career.UserInput) (career.Analysis, error)
}

type service struct {
	llm    llm.Model
	models Models
}

func NewService(model llm.Model, models Models) UseCase {
	return &service{
		llm:    model,
		models: models.withDefaults(),
	}
}

// Analyze validates the input, sends a single request and parses the answer.
// Any failure after validation is reported as ErrAnalysisFailed; there are
// no retries.
func (s *service) Analyze(ctx context.Context, in career.UserInput) (career.Analysis, error) {
	if err := in.Validate(); err != nil {
		return career.Analysis{}, err
	}
	if s.llm == nil {
		return career.Analysis{}, &failure{cause: errors.New("model is not configured")}
	}

	req := BuildRequest(in, s.models)
	if err := req.Validate(); err != nil {
		return career.Analysis{}, &failure{cause: err}
	}
	resp, err := s.llm.Generate(ctx, req)
	if err != nil {
		log.Printf("analysis: %s request failed: %v", req.Model, err)
		return career.Analysis{}, &failure{cause: err}
	}
	a, err := Parse(resp.Text, in.Mode, resp.Grounding)
	if err != nil {
		log.Printf("analysis: %s response rejected: %v", req.Model, err)
		return career.Analysis{}, &failure{cause: err}
	}
	return a, nil
}
