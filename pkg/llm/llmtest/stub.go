// Package llmtest provides a scripted llm.Model for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/artem13815/careerlens/pkg/llm"
)

// Stub answers every request with Respond (or Text/Err when Respond is nil)
// and records the requests it received.
type Stub struct {
	Text      string
	Grounding []llm.GroundingChunk
	Err       error
	Respond   func(req llm.Request) (llm.Response, error)

	mu       sync.Mutex
	requests []llm.Request
}

func (s *Stub) Generate(ctx context.Context, req llm.Request) (llm.Response, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return llm.Response{}, err
	}
	if s.Respond != nil {
		return s.Respond(req)
	}
	if s.Err != nil {
		return llm.Response{}, s.Err
	}
	return llm.Response{Text: s.Text, Grounding: s.Grounding}, nil
}

// Requests returns a copy of all requests seen so far.
func (s *Stub) Requests() []llm.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.Request(nil), s.requests...)
}

// Last returns the most recent request.
func (s *Stub) Last() llm.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return llm.Request{}
	}
	return s.requests[len(s.requests)-1]
}
