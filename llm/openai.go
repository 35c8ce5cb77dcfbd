package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	apperrors "member-qa/errors"
	"member-qa/prompts"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// LLM call contract shared by all providers.
const (
	generationTemperature = 0.3
	generationMaxTokens   = 500
)

// OpenAIGenerator answers questions through the OpenAI chat completions API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAIGenerator(apiKey, model string, timeout time.Duration, logger *zap.Logger) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, apperrors.WrapError(apperrors.ErrLLMCommunication, "openai api key is empty")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger,
	}, nil
}

// Generate sends a single-turn chat completion. Any failure degrades to the
// fixed apology answer.
func (g *OpenAIGenerator) Generate(ctx context.Context, question, contextText string) string {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.QASystem()},
			{Role: openai.ChatMessageRoleUser, Content: prompts.QAAnswer(contextText, question)},
		},
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		g.logger.Error("OpenAI generation failed", zap.Error(err))
		return ApologyAnswer
	}
	if len(resp.Choices) == 0 {
		g.logger.Error("OpenAI returned no choices", zap.String("model", g.model))
		return ApologyAnswer
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func (g *OpenAIGenerator) Provider() string { return ProviderOpenAI }

func (g *OpenAIGenerator) Model() string { return g.model }
