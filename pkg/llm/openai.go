package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1/"
	geminiBaseURL     = "https://generativelanguage.googleapis.com/v1beta/openai/"
)

// OpenAIClient talks to any OpenAI-compatible chat completions API.
type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string, opts ...option.RequestOption) *OpenAIClient {
	return newChatClient(openai.ChatModelGPT4oMini, "gpt-4o-mini", append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
}

func NewOpenRouterClient(apiKey string) *OpenAIClient {
	return newChatClient("google/gemini-2.0-flash-001", "openrouter/gemini-2.0-flash", option.WithAPIKey(apiKey), option.WithBaseURL(openRouterBaseURL))
}

func NewGeminiClient(apiKey string) *OpenAIClient {
	return newChatClient("gemini-2.0-flash", "gemini-2.0-flash", option.WithAPIKey(apiKey), option.WithBaseURL(geminiBaseURL))
}

func newChatClient(model openai.ChatModel, modelName string, opts ...option.RequestOption) *OpenAIClient {
	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client:    &client,
		model:     model,
		modelName: modelName,
	}
}

func (c *OpenAIClient) Name() string {
	return c.modelName
}

func (c *OpenAIClient) Resumir(ctx context.Context, texto string) (string, error) {
	return c.complete(ctx, resumirPrompt, texto)
}

func (c *OpenAIClient) ResumirDia(ctx context.Context, contenido string) (string, error) {
	return c.complete(ctx, resumirDiaPrompt, contenido)
}

func (c *OpenAIClient) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	if err != nil {
		return "", fmt.Errorf("%s API error: %w", c.modelName, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: %w", c.modelName, ErrEmptyResponse)
	}

	content := cleanResponse(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%s: %w", c.modelName, ErrEmptyResponse)
	}

	return content, nil
}
