package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/sift/internal/cli"
	"github.com/aretw0/sift/pkg/adapters/memory"
	"github.com/aretw0/sift/pkg/adapters/openai"
	redisstore "github.com/aretw0/sift/pkg/adapters/redis"
	"github.com/aretw0/sift/pkg/ports"
	"github.com/aretw0/sift/pkg/schema"
)

// loadSchema reads the schema from the -f flag, falling back to the
// built-in demo form.
func loadSchema(cmd *cobra.Command) (schema.Node, error) {
	path, _ := cmd.Flags().GetString("schema")
	if path == "" {
		return cli.DemoForm(), nil
	}
	root, err := schema.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", path, err)
	}
	return root, nil
}

// newCompleter builds the model client from config. The key check
// happens here, before any session starts.
func newCompleter(ctx context.Context, cfg cli.Config) (ports.Completer, error) {
	return openai.New(ctx, openai.Config{
		APIKey:     cfg.OpenAIAPIKey,
		Model:      cfg.OpenAIModel,
		BaseURL:    cfg.OpenAIBaseURL,
		MaxRetries: 2,
	})
}

// newStore picks the session store: Redis when an address is
// configured, in-memory otherwise.
func newStore(cfg cli.Config) ports.StateStore {
	if cfg.RedisAddr != "" {
		return redisstore.New(cfg.RedisAddr, cfg.RedisPassword, 0)
	}
	return memory.NewStore()
}
