package llm

import (
	"context"
	"fmt"
	"strings"

	"member-qa/qa"
	"member-qa/store"

	"go.uber.org/zap"
)

// ConfigureKeyAnswer is returned by fallback mode when the question names no
// known user and a real LLM would be needed.
const ConfigureKeyAnswer = "I apologize, but I need an LLM API key to answer complex questions. Please configure OPENAI_API_KEY or ANTHROPIC_API_KEY."

const fallbackJoinLimit = 3

// FallbackGenerator produces deterministic keyword-heuristic answers when no
// LLM provider is configured.
type FallbackGenerator struct {
	matcher *qa.Matcher
	store   *store.Store
	logger  *zap.Logger
}

func NewFallbackGenerator(matcher *qa.Matcher, st *store.Store, logger *zap.Logger) *FallbackGenerator {
	return &FallbackGenerator{
		matcher: matcher,
		store:   st,
		logger:  logger,
	}
}

// Generate answers from keyword heuristics over the matched user's messages.
// Categories are checked in a fixed order and only the first one whose
// keywords appear in the question is evaluated; a category that matches the
// question but filters down to nothing falls through to the generic answer.
func (g *FallbackGenerator) Generate(ctx context.Context, question, contextText string) string {
	user, ok := g.matcher.Match(question)
	if !ok {
		return ConfigureKeyAnswer
	}

	messages := g.store.MessagesFor(user)
	if len(messages) == 0 {
		return fmt.Sprintf("I don't have any messages from %s.", user)
	}

	questionLower := strings.ToLower(question)

	switch {
	case containsAny(questionLower, "trip", "travel", "when"):
		relevant := filterByKeywords(messages, "trip", "travel")
		if len(relevant) > 0 {
			return fmt.Sprintf("Based on %s's messages: %s", user, joinTexts(relevant, fallbackJoinLimit))
		}

	case containsAny(questionLower, "car", "how many"):
		relevant := filterByKeywords(messages, "car")
		if len(relevant) > 0 {
			return fmt.Sprintf("Found %d message(s) from %s mentioning cars. However, I need an LLM to provide a detailed answer.", len(relevant), user)
		}
		return fmt.Sprintf("I don't have enough information to answer that question about %s.", user)

	case containsAny(questionLower, "restaurant", "favorite"):
		relevant := filterByKeywords(messages, "restaurant")
		if len(relevant) > 0 {
			return fmt.Sprintf("Based on %s's messages: %s", user, joinTexts(relevant, fallbackJoinLimit))
		}
	}

	return fmt.Sprintf("I found %d message(s) from %s, but I need an LLM API key to provide a detailed answer. Please configure OPENAI_API_KEY or ANTHROPIC_API_KEY.", len(messages), user)
}

func (g *FallbackGenerator) Provider() string { return ProviderFallback }

// Model returns the empty string: fallback mode has no model, and the stats
// snapshot renders it as null.
func (g *FallbackGenerator) Model() string { return "" }

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// filterByKeywords keeps messages whose lowercased text contains any keyword,
// preserving order.
func filterByKeywords(messages []store.Message, keywords ...string) []store.Message {
	var relevant []store.Message
	for _, msg := range messages {
		if containsAny(strings.ToLower(msg.Message), keywords...) {
			relevant = append(relevant, msg)
		}
	}
	return relevant
}

// joinTexts joins up to limit message texts with "; ".
func joinTexts(messages []store.Message, limit int) string {
	if len(messages) > limit {
		messages = messages[:limit]
	}
	texts := make([]string, len(messages))
	for i, msg := range messages {
		texts[i] = msg.Message
	}
	return strings.Join(texts, "; ")
}
