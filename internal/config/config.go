package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	App   AppConfig
	Mongo MongoConfig
	GenAI GenAIConfig
}

type AppConfig struct {
	HTTPPort string
}

type MongoConfig struct {
	URI      string
	Database string
}

type GenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

const (
	defaultHTTPPort     = "5000"
	defaultMongoDB      = "wellness"
	defaultGenAIModel   = "gemini-1.5-flash"
	defaultGenAIBaseURL = "https://generativelanguage.googleapis.com"
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		HTTPPort: opt("HTTP_PORT", defaultHTTPPort),
	}

	cfg.Mongo = MongoConfig{
		URI:      req("MONGO_URI"),
		Database: opt("MONGO_DB", defaultMongoDB),
	}

	cfg.GenAI = GenAIConfig{
		APIKey:  req("GEMINI_API_KEY"),
		Model:   opt("GEMINI_MODEL", defaultGenAIModel),
		BaseURL: opt("GEMINI_BASE_URL", defaultGenAIBaseURL),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
