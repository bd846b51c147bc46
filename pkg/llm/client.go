package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	ProviderGemini     = "GEMINI"
	ProviderOpenRouter = "OPENROUTER"
	ProviderOpenAI     = "OPENAI"
	ProviderAnthropic  = "ANTHROPIC"
)

var (
	ErrUnknownProvider = errors.New("unknown llm provider")
	ErrMissingAPIKey   = errors.New("missing llm api key")
	ErrEmptyResponse   = errors.New("empty llm response")
)

// Summarizer produces the individual and daily summaries stored with the avisos.
type Summarizer interface {
	Resumir(ctx context.Context, texto string) (string, error)
	ResumirDia(ctx context.Context, contenido string) (string, error)
	Name() string
}

// NewFromEnv builds the summarizer for provider, reading its key from the environment.
func NewFromEnv(provider string) (Summarizer, error) {
	provider = strings.ToUpper(strings.TrimSpace(provider))

	keyVar, ok := map[string]string{
		ProviderGemini:     "GEMINI_API_KEY",
		ProviderOpenRouter: "OPENROUTER_API_KEY",
		ProviderOpenAI:     "OPENAI_API_KEY",
		ProviderAnthropic:  "ANTHROPIC_API_KEY",
	}[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}

	apiKey := os.Getenv(keyVar)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrMissingAPIKey, keyVar)
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiClient(apiKey), nil
	case ProviderOpenRouter:
		return NewOpenRouterClient(apiKey), nil
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey), nil
	default:
		return NewAnthropicClient(apiKey), nil
	}
}

// cleanResponse strips markdown fences and leading labels some models add
// around the summary text.
func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```markdown")
	content = strings.TrimPrefix(content, "```text")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	for _, label := range []string{"Resumen:", "RESUMEN:"} {
		content = strings.TrimSpace(strings.TrimPrefix(content, label))
	}

	return content
}
