package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	for _, k := range []string{"PORT", "LLM_PROVIDER", "MODEL_FAST", "MODEL_DEEP", "RATE_LIMIT_AI_PER_MIN", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, "gemini-2.5-flash", cfg.ModelFast)
	assert.Equal(t, "gemini-3-pro-preview", cfg.ModelDeep)
	assert.Equal(t, 10, cfg.RateLimitAIPerMin)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
llm_provider: openrouter
openrouter_api_key: from-yaml
model_fast: google/gemini-2.5-flash
session_ttl_minutes: 15
cors_origins: ["https://careerlens.example"]
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("RATE_LIMIT_AI_PER_MIN", "3")
	t.Setenv("SESSION_TTL_MINUTES", "not-a-number")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("MODEL_FAST", "")
	t.Setenv("MODEL_DEEP", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "openrouter", cfg.LLMProvider)
	assert.Equal(t, "from-yaml", cfg.APIKey())
	assert.Equal(t, "google/gemini-2.5-flash", cfg.ModelFast)
	assert.Equal(t, "google/gemini-3-pro-preview", cfg.ModelDeep)
	assert.Equal(t, 15, cfg.SessionTTLMinutes)
	assert.Equal(t, 3, cfg.RateLimitAIPerMin)
	assert.Equal(t, []string{"https://careerlens.example"}, cfg.CORSOrigins)
}

func TestLoad_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unterminated"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("LLM_PROVIDER", "bard")
	_, err = Load()
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
}
