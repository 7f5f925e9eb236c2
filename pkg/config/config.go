package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port          string `yaml:"port"`
	JWTSecret     string `yaml:"jwt_secret"`
	JWTIssuer     string `yaml:"jwt_issuer"`
	JWTTTLMinutes int    `yaml:"jwt_ttl_minutes"`

	// LLMProvider is "gemini" (default) or "openrouter".
	LLMProvider   string `yaml:"llm_provider"`
	GeminiAPIKey  string `yaml:"gemini_api_key"`
	GeminiBaseURL string `yaml:"gemini_base_url"`
	ModelFast     string `yaml:"model_fast"`
	ModelDeep     string `yaml:"model_deep"`

	OpenRouterAPIKey   string `yaml:"openrouter_api_key"`
	OpenRouterBase     string `yaml:"openrouter_base"`
	OpenRouterAppTitle string `yaml:"openrouter_app_title"`
	OpenRouterReferer  string `yaml:"openrouter_referer"`

	SessionTTLMinutes int      `yaml:"session_ttl_minutes"`
	RateLimitAIPerMin int      `yaml:"rate_limit_ai_per_min"`
	CORSOrigins       []string `yaml:"cors_origins"`
}

func defaults() Config {
	return Config{
		Port:               "8080",
		JWTSecret:          "dev-secret-change",
		JWTIssuer:          "careerlens",
		JWTTTLMinutes:      60,
		LLMProvider:        "gemini",
		ModelFast:          "gemini-2.5-flash",
		ModelDeep:          "gemini-3-pro-preview",
		OpenRouterAppTitle: "CareerLens",
		SessionTTLMinutes:  120,
		RateLimitAIPerMin:  10,
		CORSOrigins:        []string{"*"},
	}
}

// Load builds the config from defaults, then the YAML file named by
// CONFIG_FILE (configs/config.yaml if unset, skipped when missing), then
// environment variables, optionally read from a .env file.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := defaults()
	path := getEnv("CONFIG_FILE", "configs/config.yaml")
	if err := loadYAML(path, &cfg); err != nil {
		return Config{}, err
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = getEnv("JWT_ISSUER", cfg.JWTIssuer)
	cfg.JWTTTLMinutes = getEnvInt("JWT_TTL_MINUTES", cfg.JWTTTLMinutes)

	cfg.LLMProvider = strings.ToLower(getEnv("LLM_PROVIDER", cfg.LLMProvider))
	cfg.GeminiAPIKey = getEnv("GEMINI_API_KEY", getEnv("API_KEY", cfg.GeminiAPIKey))
	cfg.GeminiBaseURL = getEnv("GEMINI_BASE_URL", cfg.GeminiBaseURL)
	cfg.ModelFast = getEnv("MODEL_FAST", cfg.ModelFast)
	cfg.ModelDeep = getEnv("MODEL_DEEP", cfg.ModelDeep)

	cfg.OpenRouterAPIKey = getEnv("OPENROUTER_API_KEY", cfg.OpenRouterAPIKey)
	cfg.OpenRouterBase = getEnv("OPENROUTER_BASE", cfg.OpenRouterBase)
	cfg.OpenRouterAppTitle = getEnv("OPENROUTER_APP_TITLE", cfg.OpenRouterAppTitle)
	cfg.OpenRouterReferer = getEnv("OPENROUTER_REFERER", cfg.OpenRouterReferer)

	cfg.SessionTTLMinutes = getEnvInt("SESSION_TTL_MINUTES", cfg.SessionTTLMinutes)
	cfg.RateLimitAIPerMin = getEnvInt("RATE_LIMIT_AI_PER_MIN", cfg.RateLimitAIPerMin)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	if cfg.LLMProvider != "gemini" && cfg.LLMProvider != "openrouter" {
		return Config{}, fmt.Errorf("config: unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
	if cfg.LLMProvider == "openrouter" {
		cfg.ModelFast = vendorPrefixed(cfg.ModelFast)
		cfg.ModelDeep = vendorPrefixed(cfg.ModelDeep)
	}
	return cfg, nil
}

// APIKey returns the key of the selected provider.
func (c Config) APIKey() string {
	if c.LLMProvider == "openrouter" {
		return c.OpenRouterAPIKey
	}
	return c.GeminiAPIKey
}

// vendorPrefixed turns a bare Gemini model id into its OpenRouter name.
func vendorPrefixed(model string) string {
	if model == "" || strings.Contains(model, "/") {
		return model
	}
	return "google/" + model
}

func loadYAML(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
