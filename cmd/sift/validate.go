package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/sift/pkg/schema"
)

// validateCmd checks a schema file without starting a session.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a schema file",
	Long:  `Parses the schema and builds its index, reporting duplicate ids and structural problems without talking to any model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadSchema(cmd)
		if err != nil {
			return err
		}
		index, err := schema.NewIndex(root)
		if err != nil {
			return fmt.Errorf("schema is invalid: %w", err)
		}

		fmt.Printf("Schema OK: %d node(s) rooted at %q\n", index.Len(), root.NodeID())
		fmt.Printf("Ids: %s\n", strings.Join(index.IDs(), ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
