package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "Sift is a schema-guided form-filling dialog engine",
	Long:  `Sift collects structured information through a conversation: you describe what to collect as a schema of selections and forms, and sift asks the user about one element at a time, using a language model to understand free-form answers.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("schema", "f", "", "Path to a schema file (YAML or JSON); omit for the built-in demo form")
}
