package health

import (
	"context"
	"errors"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Status of one checker; Error is empty when it passed.
type Status struct {
	Name  string `json:"name"`
	Error string `json:"error,omitempty"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	// Ready runs every checker and returns their statuses. The error joins
	// all failures.
	Ready(ctx context.Context) ([]Status, error)
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

func (s *service) Ready(ctx context.Context) ([]Status, error) {
	statuses := make([]Status, 0, len(s.checkers))
	var errs []error
	for _, ch := range s.checkers {
		st := Status{Name: ch.Name()}
		if err := ch.Check(ctx); err != nil {
			st.Error = err.Error()
			errs = append(errs, err)
		}
		statuses = append(statuses, st)
	}
	return statuses, errors.Join(errs...)
}
