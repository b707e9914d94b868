package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/MausamRakse/Physician-Notetaker/pkg/validator"
)

// envPrefix namespaces every variable, e.g. NOTETAKER_SENTIMENT_API_KEY.
const envPrefix = "notetaker"

// Config holds application configuration
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development" validate:"oneof=development production"`
	OutputDir   string `envconfig:"OUTPUT_DIR" default:"." validate:"required"`

	Sentiment SentimentModelConfig `envconfig:"SENTIMENT"`
	Tagger    TaggerConfig         `envconfig:"TAGGER"`
}

// SentimentModelConfig holds the hosted sentiment classifier configuration.
// The classifier is optional: without an API key the pipeline runs on its
// lexicon fallback.
type SentimentModelConfig struct {
	APIKey  string        `envconfig:"API_KEY"`
	BaseURL string        `envconfig:"API_URL" default:"https://api-inference.huggingface.co" validate:"url"`
	Model   string        `envconfig:"MODEL" default:"distilbert-base-uncased-finetuned-sst-2-english" validate:"required"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
}

// Enabled reports whether a classifier credential is configured.
func (c SentimentModelConfig) Enabled() bool {
	return c.APIKey != ""
}

// TaggerConfig holds the in-process NER model configuration.
type TaggerConfig struct {
	Disabled bool `envconfig:"DISABLED" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	if err := envconfig.Process(envPrefix, config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return validator.New().Validate(c)
}
