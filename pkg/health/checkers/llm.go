package checkers

import (
	"context"
	"fmt"
)

// LLMChecker reports not ready while the model provider has no API key.
// It does not call the provider, since each call spends quota.
type LLMChecker struct {
	provider string
	apiKey   string
}

func NewLLMChecker(provider, apiKey string) *LLMChecker {
	return &LLMChecker{provider: provider, apiKey: apiKey}
}

func (c *LLMChecker) Name() string { return "llm:" + c.provider }

func (c *LLMChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.apiKey == "" {
		return fmt.Errorf("%s: API key is not configured", c.provider)
	}
	return nil
}
