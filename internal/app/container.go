package app

import (
	"context"
	"log"
	"time"

	"welltips/internal/config"
	"welltips/internal/infrastructure/genai"
	"welltips/internal/infrastructure/persistence/mongodb"
)

// Container holds the two long-lived external clients. Both are
// constructed here, injected downward, and torn down via Close; no
// package-level connection state anywhere.
type Container struct {
	Config config.Config
	Store  *mongodb.Store
	GenAI  genai.Client
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}

	gen := genai.NewClient(cfg.GenAI.BaseURL, cfg.GenAI.APIKey, cfg.GenAI.Model, log.Default())

	return &Container{Config: cfg, Store: store, GenAI: gen}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}
