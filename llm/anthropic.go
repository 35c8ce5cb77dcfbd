package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "member-qa/errors"
	"member-qa/prompts"

	"go.uber.org/zap"
)

const anthropicAPIVersion = "2023-06-01"

// AnthropicGenerator answers questions through the Anthropic messages API.
// The API is called directly over HTTP with typed request/response structs.
type AnthropicGenerator struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature,omitempty"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewAnthropicGenerator(apiKey, baseURL, model string, timeout time.Duration, logger *zap.Logger) (*AnthropicGenerator, error) {
	if apiKey == "" {
		return nil, apperrors.WrapError(apperrors.ErrLLMCommunication, "anthropic api key is empty")
	}

	return &AnthropicGenerator{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Generate sends the prompt as a single user message. Any failure degrades
// to the fixed apology answer.
func (g *AnthropicGenerator) Generate(ctx context.Context, question, contextText string) string {
	reqBody := anthropicRequest{
		Model:     g.model,
		MaxTokens: generationMaxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompts.QAAnswer(contextText, question)},
		},
		Temperature: generationTemperature,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		g.logger.Error("Failed to marshal Anthropic request", zap.Error(err))
		return ApologyAnswer
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		g.logger.Error("Failed to create Anthropic request", zap.Error(err))
		return ApologyAnswer
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error("Anthropic request failed", zap.Error(err))
		return ApologyAnswer
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		g.logger.Error("Failed to read Anthropic response", zap.Error(err))
		return ApologyAnswer
	}

	if resp.StatusCode != http.StatusOK {
		g.logger.Error("Anthropic returned non-200 status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return ApologyAnswer
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		g.logger.Error("Failed to decode Anthropic response", zap.Error(err))
		return ApologyAnswer
	}
	if parsed.Error != nil {
		g.logger.Error("Anthropic returned an error",
			zap.String("type", parsed.Error.Type),
			zap.String("message", parsed.Error.Message))
		return ApologyAnswer
	}
	if len(parsed.Content) == 0 {
		g.logger.Error("Anthropic returned no content blocks", zap.String("model", g.model))
		return ApologyAnswer
	}

	return strings.TrimSpace(parsed.Content[0].Text)
}

func (g *AnthropicGenerator) Provider() string { return ProviderAnthropic }

func (g *AnthropicGenerator) Model() string { return g.model }
