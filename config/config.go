package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the application's configuration
type Config struct {
	APIBaseURL          string        `mapstructure:"API_BASE_URL"`
	OpenAIAPIKey        string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel         string        `mapstructure:"OPENAI_MODEL"`
	AnthropicAPIKey     string        `mapstructure:"ANTHROPIC_API_KEY"`
	AnthropicModel      string        `mapstructure:"ANTHROPIC_MODEL"`
	AnthropicBaseURL    string        `mapstructure:"ANTHROPIC_BASE_URL"`
	Port                int           `mapstructure:"PORT"`
	Debug               bool          `mapstructure:"DEBUG"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	FetchPageLimit      int           `mapstructure:"FETCH_PAGE_LIMIT"`
	FetchMaxRetries     int           `mapstructure:"FETCH_MAX_RETRIES"`
	FetchTimeout        time.Duration `mapstructure:"FETCH_TIMEOUT"`
	LLMRequestTimeout   time.Duration `mapstructure:"LLM_REQUEST_TIMEOUT"`
	FuzzyMatchThreshold int           `mapstructure:"FUZZY_MATCH_THRESHOLD"`
	KeywordTopK         int           `mapstructure:"KEYWORD_TOP_K"`
	AnswerCacheSize     int           `mapstructure:"ANSWER_CACHE_SIZE"`
}

func Load(logger *zap.Logger) *Config {
	var config Config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")        // For running locally
	viper.AddConfigPath("../")      // For running from docker subdir
	viper.AddConfigPath("./config") // Common config folder
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("API_BASE_URL", "https://november7-730026606190.europe-west1.run.app/messages/")
	viper.SetDefault("OPENAI_MODEL", "gpt-4-turbo-preview")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-3-sonnet-20240229")
	viper.SetDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com/v1")
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("FETCH_PAGE_LIMIT", 100)
	viper.SetDefault("FETCH_MAX_RETRIES", 3)
	viper.SetDefault("FETCH_TIMEOUT", 10)
	viper.SetDefault("LLM_REQUEST_TIMEOUT", 60)
	viper.SetDefault("FUZZY_MATCH_THRESHOLD", 75)
	viper.SetDefault("KEYWORD_TOP_K", 20)
	viper.SetDefault("ANSWER_CACHE_SIZE", 256)

	if err := viper.ReadInConfig(); err != nil {
		if logger != nil {
			logger.Warn("Could not read config file, using defaults/env vars", zap.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		// Config unmarshaling is critical - fail fast during bootstrap
		if logger != nil {
			logger.Fatal("Unable to decode config into struct", zap.Error(err))
		} else {
			// Fallback if logger not available (should not happen in practice)
			fmt.Fprintf(os.Stderr, "FATAL: Unable to decode config into struct: %v\n", err)
			os.Exit(1)
		}
	}

	// Convert seconds to proper time.Duration
	config.FetchTimeout = config.FetchTimeout * time.Second
	config.LLMRequestTimeout = config.LLMRequestTimeout * time.Second

	return &config
}
