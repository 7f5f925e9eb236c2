package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/careerlens/pkg/llm"
)

func TestGenerate_SearchUsesWebPluginAndCitations(t *testing.T) {
	var got map[string]any
	var auth, title string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		title = r.Header.Get("X-Title")
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok",
			"annotations":[{"type":"url_citation","url_citation":{"url":"https://x.in","title":"X"}},{"type":"file"}]}}]}`))
	}))
	defer srv.Close()

	c := New("key", srv.URL, "careerlens", "")
	resp, err := c.Generate(context.Background(), llm.Request{
		Model:             "google/gemini-2.5-flash",
		SystemInstruction: "sys",
		Parts:             []llm.Part{llm.TextPart("hi")},
		Tools:             []llm.Tool{llm.ToolWebSearch},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer key", auth)
	assert.Equal(t, "careerlens", title)
	assert.Equal(t, "ok", resp.Text)
	require.Len(t, resp.Grounding, 2)
	assert.Equal(t, "https://x.in", resp.Grounding[0].Web.URI)
	assert.Nil(t, resp.Grounding[1].Web)

	assert.Equal(t, []any{map[string]any{"id": "web"}}, got["plugins"])
	assert.NotContains(t, got, "response_format")
	msgs := got["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hi", msgs[1].(map[string]any)["content"])
}

func TestGenerate_ImageAndJSON(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{}"}}]}`))
	}))
	defer srv.Close()

	_, err := New("key", srv.URL, "", "").Generate(context.Background(), llm.Request{
		Model:        "m",
		Parts:        []llm.Part{llm.TextPart("see image"), llm.InlinePart("image/jpeg", "Zm9v")},
		JSONResponse: true,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"type": "json_object"}, got["response_format"])
	msgs := got["messages"].([]any)
	require.Len(t, msgs, 1)
	parts := msgs[0].(map[string]any)["content"].([]any)
	require.Len(t, parts, 2)
	img := parts[1].(map[string]any)["image_url"].(map[string]any)
	assert.Equal(t, "data:image/jpeg;base64,Zm9v", img["url"])
}

func TestGenerate_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New("key", srv.URL, "", "").Generate(context.Background(), llm.Request{Model: "m", Parts: []llm.Part{llm.TextPart("x")}})
	assert.ErrorContains(t, err, "openrouter http 401")
}
