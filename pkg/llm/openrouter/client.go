package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/artem13815/careerlens/pkg/llm"
)

// Client is a minimal OpenRouter (OpenAI-compatible) chat completions client.
type Client struct {
	APIKey   string
	BaseURL  string
	AppTitle string
	Referer  string
	httpDo   *http.Client
}

func New(apiKey, baseURL, appTitle, referer string) *Client {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	return &Client{
		APIKey:   apiKey,
		BaseURL:  baseURL,
		AppTitle: appTitle,
		Referer:  referer,
		httpDo: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type imageURL struct {
	URL string `json:"url"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

// message content is either a plain string or a list of parts.
type message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type plugin struct {
	ID string `json:"id"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionsRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float32         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Plugins        []plugin        `json:"plugins,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type annotation struct {
	Type        string `json:"type"`
	URLCitation *struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	} `json:"url_citation,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role        string       `json:"role"`
		Content     string       `json:"content"`
		Annotations []annotation `json:"annotations"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// Generate maps the request onto chat completions. Web search uses the
// "web" plugin; its url_citation annotations become grounding chunks.
func (c *Client) Generate(ctx context.Context, req llm.Request) (llm.Response, error) {
	if c.APIKey == "" {
		return llm.Response{}, errors.New("openrouter api key is empty")
	}
	if err := req.Validate(); err != nil {
		return llm.Response{}, err
	}
	data, err := json.Marshal(buildRequest(req))
	if err != nil {
		return llm.Response{}, err
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return llm.Response{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.Referer)
	}
	if c.AppTitle != "" {
		httpReq.Header.Set("X-Title", c.AppTitle)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return llm.Response{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return llm.Response{}, fmt.Errorf("openrouter http %d: %v", resp.StatusCode, errMap)
	}
	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return llm.Response{}, err
	}
	if len(out.Choices) == 0 {
		return llm.Response{}, errors.New("no choices returned by model")
	}
	msg := out.Choices[0].Message
	res := llm.Response{Text: msg.Content}
	for _, a := range msg.Annotations {
		gc := llm.GroundingChunk{}
		if a.Type == "url_citation" && a.URLCitation != nil {
			gc.Web = &llm.WebRef{URI: a.URLCitation.URL, Title: a.URLCitation.Title}
		}
		res.Grounding = append(res.Grounding, gc)
	}
	return res, nil
}

func buildRequest(req llm.Request) chatCompletionsRequest {
	var messages []message
	if req.SystemInstruction != "" {
		messages = append(messages, message{Role: "system", Content: req.SystemInstruction})
	}
	parts := make([]contentPart, 0, len(req.Parts))
	for _, p := range req.Parts {
		if p.Inline != nil {
			uri := "data:" + p.Inline.MIMEType + ";base64," + p.Inline.Data
			parts = append(parts, contentPart{Type: "image_url", ImageURL: &imageURL{URL: uri}})
			continue
		}
		parts = append(parts, contentPart{Type: "text", Text: p.Text})
	}
	if len(parts) == 1 && parts[0].Type == "text" {
		messages = append(messages, message{Role: "user", Content: parts[0].Text})
	} else {
		messages = append(messages, message{Role: "user", Content: parts})
	}

	out := chatCompletionsRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: 0.2,
	}
	if req.HasTool(llm.ToolWebSearch) {
		out.Plugins = []plugin{{ID: "web"}}
	}
	if req.JSONResponse {
		out.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	return out
}
