package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cognitivecopilot/graphkit/internal/config"
	"github.com/cognitivecopilot/graphkit/internal/opencode"
)

func newValidateCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "validate [opencode.jsonc]",
		Short: "Validate an opencode.jsonc configuration",
		Long:  "Checks the opencode.jsonc schema, the expected MCP servers, agents, commands and referenced files, and reports on the documentation set.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}

			configPath := cfg.Validator.ConfigPath
			if len(args) == 1 {
				configPath = args[0]
			}
			baseRoot := root
			if baseRoot == "" {
				baseRoot = cfg.Validator.Root
			}
			if baseRoot == "" {
				baseRoot = filepath.Dir(configPath)
			}

			v := &opencode.Validator{ConfigPath: configPath, Root: baseRoot}
			report := v.Run()

			report.Print(os.Stdout)
			report.PrintDocs(os.Stdout)

			if !report.Passed() {
				return fmt.Errorf("configuration validation failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "base directory for file path checks (default: config file's directory)")

	return cmd
}
