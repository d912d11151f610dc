package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/modelkit/casing"
)

// CasingCmd converts identifier names between case conventions.
var CasingCmd = &cobra.Command{
	Use:   "casing <snake|camel|studly> <name>...",
	Short: "Convert identifier names between case conventions",
	Long: `Convert identifier names between snake_case, camelCase and StudlyCase.

Examples:
  modelkit casing snake firstName      # first_name
  modelkit casing camel first_name     # firstName
  modelkit casing studly first_name    # FirstName`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCasing,
}

func runCasing(cmd *cobra.Command, args []string) error {
	convert, err := converter(args[0])
	if err != nil {
		return err
	}
	for _, name := range args[1:] {
		fmt.Println(convert(name))
	}
	return nil
}

func converter(style string) (func(string) string, error) {
	switch style {
	case "snake":
		return casing.Snake, nil
	case "camel":
		return casing.Camel, nil
	case "studly":
		return casing.Studly, nil
	default:
		return nil, fmt.Errorf("unknown case style %q (want snake, camel or studly)", style)
	}
}
