package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/modelkit/cmd/modelkit/commands"
	"github.com/teranos/modelkit/config"
	"github.com/teranos/modelkit/logger"
)

var rootCmd = &cobra.Command{
	Use:   "modelkit",
	Short: "modelkit - Attribute projection toolkit",
	Long: `modelkit - Project attribute documents through declarative model policies.

A policy declares which attributes mass assignment may touch (fillable /
guarded), which are exported (hidden / visible / appends), declared type
casts, and the export key convention.

Available commands:
  project - Run a JSON attribute document through a policy and print the export
  casing  - Convert identifier names between case conventions
  config  - Show the effective modelkit configuration

Examples:
  modelkit project --policy user.toml --attrs input.json
  modelkit project --policy user.toml --attrs input.json --force
  modelkit casing snake firstName
  modelkit config show`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(config.LogJSON()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commands.ProjectCmd)
	rootCmd.AddCommand(commands.CasingCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
