package config

import (
	"errors"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("GEMINI_BASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.HTTPPort != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.App.HTTPPort)
	}
	if cfg.Mongo.Database != "wellness" {
		t.Fatalf("expected default database, got %q", cfg.Mongo.Database)
	}
	if cfg.GenAI.Model != "gemini-1.5-flash" {
		t.Fatalf("expected default model, got %q", cfg.GenAI.Model)
	}
	if !strings.HasPrefix(cfg.GenAI.BaseURL, "https://") {
		t.Fatalf("expected default base URL, got %q", cfg.GenAI.BaseURL)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected missing-env error, got %v", err)
	}
	for _, key := range []string{"MONGO_URI", "GEMINI_API_KEY"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error should name %s: %v", key, err)
		}
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("MONGO_DB", "welltips_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.HTTPPort != "8080" {
		t.Fatalf("expected 8080, got %q", cfg.App.HTTPPort)
	}
	if cfg.Mongo.Database != "welltips_test" {
		t.Fatalf("expected welltips_test, got %q", cfg.Mongo.Database)
	}
}
