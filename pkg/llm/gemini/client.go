package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/artem13815/careerlens/pkg/llm"
)

// Client adapts the Gemini SDK to llm.Model. The SDK client is created on
// first use so a missing key surfaces as a request error, not a startup
// failure.
type Client struct {
	APIKey  string
	BaseURL string

	once   sync.Once
	sdk    *genai.Client
	sdkErr error
}

// New returns a client for the Gemini API. baseURL overrides the SDK
// endpoint; a trailing API version such as /v1beta is honored.
func New(apiKey, baseURL string) *Client {
	return &Client{APIKey: apiKey, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Client) models(ctx context.Context) (*genai.Models, error) {
	c.once.Do(func() {
		opts := genai.HTTPOptions{}
		if c.BaseURL != "" {
			opts.BaseURL, opts.APIVersion = splitVersion(c.BaseURL)
		}
		c.sdk, c.sdkErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      c.APIKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPClient:  &http.Client{Timeout: 120 * time.Second},
			HTTPOptions: opts,
		})
	})
	if c.sdkErr != nil {
		return nil, c.sdkErr
	}
	return c.sdk.Models, nil
}

// splitVersion separates "https://host/v1beta" into base and version.
func splitVersion(base string) (string, string) {
	i := strings.LastIndex(base, "/")
	if i < 0 {
		return base + "/", ""
	}
	last := base[i+1:]
	if strings.HasPrefix(last, "v1") {
		return base[:i+1], last
	}
	return base + "/", ""
}

// Generate sends one generateContent call and flattens the first candidate.
func (c *Client) Generate(ctx context.Context, req llm.Request) (llm.Response, error) {
	if c.APIKey == "" {
		return llm.Response{}, errors.New("gemini api key is empty")
	}
	if err := req.Validate(); err != nil {
		return llm.Response{}, err
	}
	contents, cfg, err := buildRequest(req)
	if err != nil {
		return llm.Response{}, err
	}
	models, err := c.models(ctx)
	if err != nil {
		return llm.Response{}, fmt.Errorf("gemini client: %w", err)
	}

	resp, err := models.GenerateContent(ctx, req.Model, contents, cfg)
	if err != nil {
		return llm.Response{}, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 {
		if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
			return llm.Response{}, fmt.Errorf("gemini blocked prompt: %s", fb.BlockReason)
		}
		return llm.Response{}, errors.New("no candidates returned by model")
	}
	return flatten(resp.Candidates[0]), nil
}

func buildRequest(req llm.Request) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	parts := make([]*genai.Part, 0, len(req.Parts))
	for _, p := range req.Parts {
		if p.Inline != nil {
			data, err := base64.StdEncoding.DecodeString(p.Inline.Data)
			if err != nil {
				return nil, nil, fmt.Errorf("gemini: inline %s data: %w", p.Inline.MIMEType, err)
			}
			parts = append(parts, genai.NewPartFromBytes(data, p.Inline.MIMEType))
			continue
		}
		parts = append(parts, genai.NewPartFromText(p.Text))
	}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.SystemInstruction}}}
	}
	if req.HasTool(llm.ToolWebSearch) {
		cfg.Tools = append(cfg.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
	}
	if req.JSONResponse {
		cfg.ResponseMIMEType = "application/json"
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, cfg, nil
}

func flatten(c *genai.Candidate) llm.Response {
	var sb strings.Builder
	if c.Content != nil {
		for _, p := range c.Content.Parts {
			if p != nil && !p.Thought {
				sb.WriteString(p.Text)
			}
		}
	}
	res := llm.Response{Text: sb.String()}
	if gm := c.GroundingMetadata; gm != nil {
		for _, ch := range gm.GroundingChunks {
			gc := llm.GroundingChunk{}
			if ch != nil && ch.Web != nil {
				gc.Web = &llm.WebRef{URI: ch.Web.URI, Title: ch.Web.Title}
			}
			res.Grounding = append(res.Grounding, gc)
		}
	}
	return res
}
