package llm

import (
	"context"
	"errors"
	"strings"
)

// ErrJSONWithTools is returned for requests asking for JSON output while a
// tool is attached; providers reject that combination.
var ErrJSONWithTools = errors.New("llm: JSON response mode cannot be combined with tools")

// Model is a minimal abstraction for generative models used by the domain.
// It hides concrete providers to preserve dependency direction.
type Model interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// Tool is a server-side capability the model may use while answering.
type Tool string

const ToolWebSearch Tool = "web_search"

// Blob is inline binary data, base64 encoded.
type Blob struct {
	MIMEType string
	Data     string
}

// Part is one piece of user content: text or inline data.
type Part struct {
	Text   string
	Inline *Blob
}

func TextPart(s string) Part { return Part{Text: s} }

func InlinePart(mimeType, data string) Part {
	return Part{Inline: &Blob{MIMEType: mimeType, Data: data}}
}

type Request struct {
	Model             string
	SystemInstruction string
	Parts             []Part
	Tools             []Tool
	JSONResponse      bool
}

// Validate checks provider-independent invariants of a request.
func (r Request) Validate() error {
	if r.Model == "" {
		return errors.New("llm: model is required")
	}
	if len(r.Parts) == 0 {
		return errors.New("llm: request has no content")
	}
	if r.JSONResponse && len(r.Tools) > 0 {
		return ErrJSONWithTools
	}
	return nil
}

// HasTool reports whether t is attached to the request.
func (r Request) HasTool(t Tool) bool {
	for _, x := range r.Tools {
		if x == t {
			return true
		}
	}
	return false
}

// WebRef is a cited web page.
type WebRef struct {
	URI   string
	Title string
}

// GroundingChunk is one grounding source; Web is nil for non-web sources.
type GroundingChunk struct {
	Web *WebRef
}

type Response struct {
	Text      string
	Grounding []GroundingChunk
}

// Ask is a convenience wrapper for single-prompt text requests.
func Ask(ctx context.Context, m Model, model, systemPrompt, userPrompt string, asJSON bool) (string, error) {
	resp, err := m.Generate(ctx, Request{
		Model:             model,
		SystemInstruction: systemPrompt,
		Parts:             []Part{TextPart(userPrompt)},
		JSONResponse:      asJSON,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}

// StripFences removes a leading ```json (or bare ```) marker and a trailing
// ``` marker around model output. Anything else is returned trimmed.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
