package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/modelkit/config"
)

// ConfigCmd displays the effective modelkit configuration.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective modelkit configuration",
	Long: `Show the effective modelkit configuration.

Configuration sources (in order of precedence):
1. Environment variables (MODELKIT_* prefix)
2. Project config (./modelkit.toml)
3. Default values

Examples:
  modelkit config show
  modelkit config get export.key_case`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., export.key_case)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	value := config.GetViper().Get(args[0])
	if value == nil {
		return fmt.Errorf("unknown configuration key %q", args[0])
	}
	fmt.Println(value)
	return nil
}
