package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/internal/cli"
	"github.com/aretw0/sift/internal/logging"
	"github.com/aretw0/sift/pkg/adapters/mcp"
	"github.com/aretw0/sift/pkg/schema"
	"github.com/aretw0/sift/pkg/session"
)

// mcpCmd exposes sessions as MCP tools over stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve dialog sessions as MCP tools over stdio",
	Long:  `Runs an MCP server on stdin/stdout so an agent host can start sessions, forward user turns and inspect collected state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig()
		if err != nil {
			return err
		}
		logger := logging.New(cfg.SlogLevel())

		root, err := loadSchema(cmd)
		if err != nil {
			return err
		}
		index, err := schema.NewIndex(root)
		if err != nil {
			return err
		}

		completer, err := newCompleter(context.Background(), cfg)
		if err != nil {
			return err
		}

		manager := session.NewManager(newStore(cfg), index, session.WithLogger(logger))
		return mcp.NewServer(manager, completer, sift.Version).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
