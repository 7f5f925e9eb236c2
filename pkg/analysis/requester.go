package analysis

import (
	"github.com/artem13815/careerlens/pkg/career"
	"github.com/artem13815/careerlens/pkg/llm"
)

// Models names the model variants the modes map to.
type Models struct {
	Fast string
	Deep string
}

// DefaultModels are used for empty fields of Models.
var DefaultModels = Models{
	Fast: "gemini-2.5-flash",
	Deep: "gemini-3-pro-preview",
}

func (m Models) withDefaults() Models {
	if m.Fast == "" {
		m.Fast = DefaultModels.Fast
	}
	if m.Deep == "" {
		m.Deep = DefaultModels.Deep
	}
	return m
}

// ModelFor returns the model a mode runs on. Search uses the fast model
// with a tool attached.
func (m Models) ModelFor(mode career.Mode) string {
	m = m.withDefaults()
	if mode == career.ModeDeep {
		return m.Deep
	}
	return m.Fast
}

// BuildRequest turns a complete input into a model request. It does not
// validate the input; see career.UserInput.Validate.
func BuildRequest(in career.UserInput, models Models) llm.Request {
	if in.Mode == "" {
		in.Mode = career.ModeFast
	}
	req := llm.Request{
		Model:             models.ModelFor(in.Mode),
		SystemInstruction: SystemPrompt,
		Parts:             []llm.Part{llm.TextPart(buildUserPrompt(in))},
	}
	if in.HasImage() {
		req.Parts = append(req.Parts, llm.InlinePart(in.Image.MIMEType, in.Image.Data))
	}
	if in.Mode == career.ModeSearch {
		req.Tools = []llm.Tool{llm.ToolWebSearch}
	}
	// Providers reject JSON output mode while a tool is attached.
	req.JSONResponse = len(req.Tools) == 0
	return req
}
