package qa

import (
	"context"

	apperrors "member-qa/errors"
	"member-qa/store"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// NoContextAnswer is returned when retrieval produced nothing to ground an
// answer on; the generator is never consulted in that case.
const NoContextAnswer = "I couldn't find any relevant information to answer your question."

// Generator produces a final answer from a question and its retrieved
// context. Implementations never fail: provider errors degrade to a fixed
// apology answer. Provider and Model feed the stats snapshot.
type Generator interface {
	Generate(ctx context.Context, question, contextText string) string
	Provider() string
	Model() string
}

// Engine orchestrates retrieval and answer generation over the read-only
// message store.
type Engine struct {
	store     *store.Store
	retriever *Retriever
	generator Generator
	answers   *lru.Cache
	logger    *zap.Logger
}

// NewEngine wires the pipeline. It fails on missing dependencies so the web
// layer can report a distinct uninitialized state instead of crashing later.
func NewEngine(st *store.Store, retriever *Retriever, generator Generator, cacheSize int, logger *zap.Logger) (*Engine, error) {
	if st == nil {
		return nil, apperrors.WrapError(apperrors.ErrEngineNotInitialized, "message store is required")
	}
	if retriever == nil {
		return nil, apperrors.WrapError(apperrors.ErrEngineNotInitialized, "retriever is required")
	}
	if generator == nil {
		return nil, apperrors.WrapError(apperrors.ErrEngineNotInitialized, "answer generator is required")
	}

	answers, err := lru.New(cacheSize)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to create answer cache")
	}

	return &Engine{
		store:     st,
		retriever: retriever,
		generator: generator,
		answers:   answers,
		logger:    logger,
	}, nil
}

// AnswerQuestion runs the full pipeline for one question. Identical
// questions are served from a bounded LRU cache; the corpus is fixed for the
// process lifetime, so cached answers never go stale.
func (e *Engine) AnswerQuestion(ctx context.Context, question string) string {
	if cached, ok := e.answers.Get(question); ok {
		e.logger.Debug("Answer cache hit", zap.String("question", question))
		return cached.(string)
	}

	contextText, sources := e.retriever.Retrieve(question)
	if contextText == "" {
		return NoContextAnswer
	}

	e.logger.Debug("Generating answer",
		zap.Int("context_messages", len(sources)),
		zap.String("provider", e.generator.Provider()))

	answer := e.generator.Generate(ctx, question, contextText)
	e.answers.Add(question, answer)
	return answer
}

// MessageCount returns the total number of messages loaded.
func (e *Engine) MessageCount() int {
	return e.store.MessageCount()
}

// UserCount returns the number of distinct users.
func (e *Engine) UserCount() int {
	return e.store.UserCount()
}
