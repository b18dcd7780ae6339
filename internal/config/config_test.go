package config

import "testing"

func TestLoad_MissingOpenAIKey(t *testing.T) {
	t.Setenv("VOYAGO_AI_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when OPENAI_API_KEY is unset")
		}
	}()
	_, _ = Load()
}

func TestLoad_MissingGeminiKey(t *testing.T) {
	t.Setenv("VOYAGO_AI_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when GEMINI_API_KEY is unset")
		}
	}()
	_, _ = Load()
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("VOYAGO_AI_PROVIDER", "")
	t.Setenv("VOYAGO_HTTP_ADDR", "")
	t.Setenv("VOYAGO_AI_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.AI.Provider != ProviderOpenAI {
		t.Errorf("AI.Provider = %q, want openai", cfg.AI.Provider)
	}
	if cfg.AI.OpenAIKey != "sk-test" {
		t.Errorf("AI.OpenAIKey = %q, want sk-test", cfg.AI.OpenAIKey)
	}
	if cfg.AI.TimeoutSeconds != 60 {
		t.Errorf("AI.TimeoutSeconds = %d, want 60", cfg.AI.TimeoutSeconds)
	}
}
