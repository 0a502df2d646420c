package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cognitivecopilot/graphkit/internal/config"
	"github.com/cognitivecopilot/graphkit/internal/graph"
	"github.com/cognitivecopilot/graphkit/internal/smoke"
)

func newSmokeCmd() *cobra.Command {
	var (
		host      string
		port      int
		graphName string
	)

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run the FalkorDB integration smoke test",
		Long:  "Connects to FalkorDB and exercises the driver end to end: count nodes, create a test node, read it back, delete it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}

			if host != "" {
				cfg.Database.Host = host
			}
			if port != 0 {
				cfg.Database.Port = port
			}
			if graphName != "" {
				cfg.Database.Graph = graphName
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			driver := graph.NewFalkorDriver(cfg.Database)
			return smoke.New(driver, os.Stdout, log).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "override FalkorDB host")
	cmd.Flags().IntVar(&port, "port", 0, "override FalkorDB port")
	cmd.Flags().StringVar(&graphName, "graph", "", "override graph name")

	return cmd
}
