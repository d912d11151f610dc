package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/modelkit/attrs"
	"github.com/teranos/modelkit/config"
	"github.com/teranos/modelkit/errors"
)

var (
	projectPolicyPath string
	projectAttrsPath  string
	projectForce      bool
	projectKeepNulls  bool
)

// ProjectCmd runs a JSON attribute document through a declarative policy.
var ProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a JSON attribute document through a policy",
	Long: `Project a JSON attribute document through a declarative TOML policy
and print the resulting JSON export.

The document is mass-assigned through the policy's fillable/guarded rules
(--force disables guarding), then exported with its hidden/visible filters,
casts and key-case conversion applied.

Examples:
  modelkit project --policy user.toml --attrs input.json
  modelkit project --policy user.toml --attrs input.json --force
  cat input.json | modelkit project --policy user.toml --attrs -`,
	RunE: runProject,
}

func init() {
	ProjectCmd.Flags().StringVar(&projectPolicyPath, "policy", "", "Path to the TOML policy file (required)")
	ProjectCmd.Flags().StringVar(&projectAttrsPath, "attrs", "", "Path to the JSON attribute document, or - for stdin (required)")
	ProjectCmd.Flags().BoolVar(&projectForce, "force", false, "Assign with guarding disabled (force-fill)")
	ProjectCmd.Flags().BoolVar(&projectKeepNulls, "keep-nulls", false, "Keep null values in the export")
	ProjectCmd.MarkFlagRequired("policy")
	ProjectCmd.MarkFlagRequired("attrs")
}

func runProject(cmd *cobra.Command, args []string) error {
	policy, err := attrs.LoadPolicyFile(projectPolicyPath)
	if err != nil {
		return err
	}
	if err := attrs.Register(policy); err != nil {
		return err
	}

	attributes, err := readAttrs(projectAttrsPath)
	if err != nil {
		return err
	}

	model, err := attrs.New(policy.Name, nil)
	if err != nil {
		return err
	}
	if projectForce {
		err = model.ForceFill(attributes)
	} else {
		err = model.Fill(attributes)
	}
	if err != nil {
		return errors.Wrap(err, "assign attributes")
	}

	if projectKeepNulls {
		config.Set("export.filter_nulls", false)
	}

	out, err := model.ToJSON()
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func readAttrs(path string) (map[string]any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read attribute document")
	}

	var attributes map[string]any
	if err := json.Unmarshal(data, &attributes); err != nil {
		return nil, errors.Wrap(err, "parse attribute document")
	}
	return attributes, nil
}
