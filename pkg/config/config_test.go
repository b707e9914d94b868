package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed with empty environment: %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("unexpected environment %q", cfg.Environment)
	}
	if cfg.OutputDir != "." {
		t.Errorf("unexpected output dir %q", cfg.OutputDir)
	}
	if cfg.Sentiment.Enabled() {
		t.Error("classifier enabled without an API key")
	}
	if cfg.Sentiment.Timeout != 30*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Sentiment.Timeout)
	}
	if cfg.Tagger.Disabled {
		t.Error("tagger disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NOTETAKER_ENVIRONMENT", "production")
	t.Setenv("NOTETAKER_SENTIMENT_API_KEY", "hf-test-key")
	t.Setenv("NOTETAKER_SENTIMENT_TIMEOUT", "5s")
	t.Setenv("NOTETAKER_TAGGER_DISABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Environment != "production" {
		t.Errorf("unexpected environment %q", cfg.Environment)
	}
	if !cfg.Sentiment.Enabled() {
		t.Error("classifier not enabled despite API key")
	}
	if cfg.Sentiment.Timeout != 5*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Sentiment.Timeout)
	}
	if !cfg.Tagger.Disabled {
		t.Error("tagger not disabled")
	}
}

func TestLoadRejectsBadEnvironment(t *testing.T) {
	t.Setenv("NOTETAKER_ENVIRONMENT", "staging")
	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for unknown environment")
	}
}
