package cli

import (
	"github.com/spf13/cobra"

	"github.com/cognitivecopilot/graphkit/internal/config"
	"github.com/cognitivecopilot/graphkit/internal/logging"
)

var (
	cfgFile    string
	logLevel   string
	dotenvFile string

	// loaded at init time
	paths config.Paths
	log   *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graphkit",
		Short: "Graphkit — utilities for the Graphiti knowledge graph",
		Long:  "Graphkit bundles the operational tooling around a Graphiti deployment: a FalkorDB query browser, a driver smoke test, and an opencode.jsonc validator.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			paths, err = config.ResolvePaths()
			if err != nil {
				return err
			}
			if cfgFile != "" {
				paths.Config = cfgFile
			}

			// .env is loaded before config so env overrides see its values.
			if err := config.LoadDotenv(dotenvFile); err != nil {
				return err
			}

			level := logLevel
			if level == "" {
				level = "info"
			}
			log = logging.New(nil, level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.graphkit/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")
	cmd.PersistentFlags().StringVar(&dotenvFile, "env-file", ".env", "dotenv file with FALKORDB_* settings")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newBrowseCmd())
	cmd.AddCommand(newSmokeCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
