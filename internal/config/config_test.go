package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CHAT_MODEL", "CHAT_TEMPERATURE", "CHAT_MAX_TOKENS", "LLM_TIMEOUT_MS", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Port)
	}
	if cfg.ChatModel != "gpt-3.5-turbo" {
		t.Errorf("unexpected default model: %s", cfg.ChatModel)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("unexpected default temperature: %v", cfg.Temperature)
	}
	if cfg.MaxTokens != 500 {
		t.Errorf("unexpected default max tokens: %d", cfg.MaxTokens)
	}
	if cfg.PresencePenalty != 0.1 || cfg.FrequencyPenalty != 0.1 {
		t.Errorf("unexpected default penalties: %v / %v", cfg.PresencePenalty, cfg.FrequencyPenalty)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Errorf("unexpected default LLM timeout: %v", cfg.LLMTimeout)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("expected default CORS origins")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CHAT_MODEL", "gpt-4o-mini")
	t.Setenv("CHAT_TEMPERATURE", "0.2")
	t.Setenv("LLM_TIMEOUT_MS", "5000")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := Load()

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("unexpected model: %s", cfg.ChatModel)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("unexpected temperature: %v", cfg.Temperature)
	}
	if cfg.LLMTimeout != 5*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.LLMTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://staging.example.com" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("unexpected api key: %s", cfg.OpenAIAPIKey)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("CHAT_TEMPERATURE", "hot")

	cfg := Load()

	if cfg.Port != 8000 {
		t.Errorf("expected fallback port 8000, got %d", cfg.Port)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("expected fallback temperature 0.7, got %v", cfg.Temperature)
	}
}
