package llm

import (
	"member-qa/config"
	"member-qa/qa"
	"member-qa/store"

	"go.uber.org/zap"
)

// ApologyAnswer is returned whenever an LLM call fails; generation errors
// never propagate past the generator.
const ApologyAnswer = "I apologize, but I encountered an error while processing your question. Please try again."

// Provider names as they appear in the stats snapshot.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderFallback  = "fallback"
)

// NewGenerator selects an answer generator once at startup: OpenAI when its
// key is configured, else Anthropic, else the keyword fallback. A provider
// that fails to initialize demotes silently to fallback mode (log only).
func NewGenerator(cfg *config.Config, matcher *qa.Matcher, st *store.Store, logger *zap.Logger) qa.Generator {
	if cfg.OpenAIAPIKey != "" {
		gen, err := NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.LLMRequestTimeout, logger)
		if err != nil {
			logger.Error("Failed to initialize OpenAI", zap.Error(err))
		} else {
			logger.Info("Using OpenAI", zap.String("model", cfg.OpenAIModel))
			return gen
		}
	} else if cfg.AnthropicAPIKey != "" {
		gen, err := NewAnthropicGenerator(cfg.AnthropicAPIKey, cfg.AnthropicBaseURL, cfg.AnthropicModel, cfg.LLMRequestTimeout, logger)
		if err != nil {
			logger.Error("Failed to initialize Anthropic", zap.Error(err))
		} else {
			logger.Info("Using Anthropic", zap.String("model", cfg.AnthropicModel))
			return gen
		}
	} else {
		logger.Warn("No LLM API key found, using fallback mode")
	}

	logger.Info("Using fallback mode (keyword-based matching)")
	return NewFallbackGenerator(matcher, st, logger)
}
