package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/careerlens/pkg/llm"
)

func TestGenerate_EncodesRequestAndFlattensResponse(t *testing.T) {
	var got map[string]any
	var path, key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		key = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "{\"a\":"}, {"text": "1}"}]},
				"groundingMetadata": {"groundingChunks": [
					{"web": {"uri": "https://naukri.com/x", "title": "Naukri"}},
					{"retrievedContext": {"uri": "gs://bucket"}}
				]}
			}]
		}`))
	}))
	defer srv.Close()

	c := New("secret", srv.URL+"/v1beta")
	resp, err := c.Generate(context.Background(), llm.Request{
		Model:             "gemini-2.5-flash",
		SystemInstruction: "be helpful",
		Parts:             []llm.Part{llm.TextPart("hello"), llm.InlinePart("image/png", "aGk=")},
		Tools:             []llm.Tool{llm.ToolWebSearch},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", path)
	assert.Equal(t, "secret", key)
	assert.Equal(t, `{"a":1}`, resp.Text)
	require.Len(t, resp.Grounding, 2)
	assert.Equal(t, "https://naukri.com/x", resp.Grounding[0].Web.URI)
	assert.Equal(t, "Naukri", resp.Grounding[0].Web.Title)
	assert.Nil(t, resp.Grounding[1].Web)

	tools := got["tools"].([]any)
	require.Len(t, tools, 1)
	assert.Contains(t, tools[0], "googleSearch")
	assert.NotContains(t, got, "generationConfig")

	contents := got["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	require.Len(t, parts, 2)
	assert.Equal(t, "hello", parts[0].(map[string]any)["text"])
	inline := parts[1].(map[string]any)["inlineData"].(map[string]any)
	assert.Equal(t, "image/png", inline["mimeType"])
	assert.Equal(t, "aGk=", inline["data"])
	sys := got["systemInstruction"].(map[string]any)["parts"].([]any)
	assert.Equal(t, "be helpful", sys[0].(map[string]any)["text"])
}

func TestGenerate_JSONModeSetsMimeType(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{}"}]}}]}`))
	}))
	defer srv.Close()

	resp, err := New("k", srv.URL).Generate(context.Background(), llm.Request{
		Model: "m", Parts: []llm.Part{llm.TextPart("x")}, JSONResponse: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "{}", resp.Text)
	cfg := got["generationConfig"].(map[string]any)
	assert.Equal(t, "application/json", cfg["responseMimeType"])
	assert.NotContains(t, got, "tools")
}

func TestGenerate_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"model not found","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	req := llm.Request{Model: "m", Parts: []llm.Part{llm.TextPart("x")}}
	_, err := New("k", srv.URL).Generate(context.Background(), req)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "gemini: "))
	assert.Contains(t, err.Error(), "model not found")

	_, err = New("", srv.URL).Generate(context.Background(), req)
	assert.ErrorContains(t, err, "api key is empty")

	bad := req
	bad.JSONResponse = true
	bad.Tools = []llm.Tool{llm.ToolWebSearch}
	_, err = New("k", srv.URL).Generate(context.Background(), bad)
	assert.ErrorIs(t, err, llm.ErrJSONWithTools)

	broken := req
	broken.Parts = []llm.Part{llm.InlinePart("image/png", "not base64!")}
	_, err = New("k", srv.URL).Generate(context.Background(), broken)
	assert.ErrorContains(t, err, "inline image/png data")
}

func TestGenerate_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`))
	}))
	defer srv.Close()

	_, err := New("k", srv.URL).Generate(context.Background(), llm.Request{Model: "m", Parts: []llm.Part{llm.TextPart("x")}})
	assert.ErrorContains(t, err, "SAFETY")
}

func TestSplitVersion(t *testing.T) {
	base, ver := splitVersion("https://generativelanguage.googleapis.com/v1beta")
	assert.Equal(t, "https://generativelanguage.googleapis.com/", base)
	assert.Equal(t, "v1beta", ver)

	base, ver = splitVersion("http://127.0.0.1:8080")
	assert.Equal(t, "http://127.0.0.1:8080/", base)
	assert.Empty(t, ver)
}
