package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/internal/cli"
	"github.com/aretw0/sift/internal/logging"
	"github.com/aretw0/sift/internal/tui"
)

// runCmd starts the interactive dialog on the terminal.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive form-filling session",
	Long:  `Starts a dialog on the terminal: sift prints the current question, you answer in free text, and the model maps your answer onto the schema. Type "q" to quit.`,
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

		ctx := context.Background()
		completer, err := newCompleter(ctx, cfg)
		if err != nil {
			return err
		}

		session, err := sift.NewSession(root, completer, sift.WithLogger(logger))
		if err != nil {
			return err
		}

		render := func(s string) string { return s }
		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner()
			render = tui.NewRenderer()
		}

		return cli.RunREPL(ctx, session.Interpreter(), os.Stdin, os.Stdout, render)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	// Make 'run' the default if no command is provided.
	rootCmd.RunE = runCmd.RunE
}
