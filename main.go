package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"member-qa/config"
	"member-qa/llm"
	"member-qa/memberapi"
	"member-qa/qa"
	"member-qa/store"
	"member-qa/web"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	// Load environment variables from .env file, if present
	_ = godotenv.Load()

	// Initialize logger with default level to load config
	tempLogger, err := config.InitLogger("info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load config (which includes log level setting)
	cfg := config.Load(tempLogger)

	// Re-initialize logger with configured level
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to re-initialize logger with configured level: %v\n", err)
		os.Exit(1)
	}
	defer config.Cleanup()

	engine := buildEngine(ctx, cfg, logger)

	// Initialize web server; a nil engine serves 503s instead of crashing
	webServer := web.NewServer(engine, logger, cfg)

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start web server
	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting Question-Answering API", zap.String("address", addr), zap.Bool("debug", cfg.Debug))
	if err := webServer.Start(ctx, addr); err != nil {
		logger.Error("Web server error", zap.Error(err))
		os.Exit(1)
	}
}

// buildEngine loads the corpus and wires the QA pipeline. It returns nil
// when the engine cannot be constructed; the API then reports an unhealthy
// state rather than exiting.
func buildEngine(ctx context.Context, cfg *config.Config, logger *zap.Logger) *qa.Engine {
	client := memberapi.NewClient(cfg, logger)
	st := store.New(client.FetchAll(ctx))
	logger.Info("Loaded messages",
		zap.Int("messages", st.MessageCount()),
		zap.Int("users", st.UserCount()))

	matcher := qa.NewMatcher(st, cfg.FuzzyMatchThreshold, logger)
	retriever := qa.NewRetriever(st, matcher, cfg.KeywordTopK, logger)
	generator := llm.NewGenerator(cfg, matcher, st, logger)

	engine, err := qa.NewEngine(st, retriever, generator, cfg.AnswerCacheSize, logger)
	if err != nil {
		logger.Error("Failed to initialize QA engine", zap.Error(err))
		return nil
	}

	logger.Info("QA Engine initialized successfully")
	return engine
}
