package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cognitivecopilot/graphkit/internal/browser"
	"github.com/cognitivecopilot/graphkit/internal/config"
	"github.com/cognitivecopilot/graphkit/internal/history"
	"github.com/cognitivecopilot/graphkit/internal/logging"
)

func newBrowseCmd() *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Start the FalkorDB query browser",
		Long:  "Serves a local web interface for running ad-hoc Cypher queries against FalkorDB.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}

			if port != 0 {
				cfg.Browser.Port = port
			}
			if bind != "" {
				cfg.Browser.Bind = bind
			}

			if cfg.Logging.File != "" {
				fileLog, f, err := logging.Open(cfg.Logging.File, cfg.Logging.Level)
				if err != nil {
					return err
				}
				defer f.Close()
				log = fileLog
			}

			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				for _, issue := range issues {
					log.Error().Str("path", issue.Path).Msg(issue.Message)
				}
				return fmt.Errorf("config validation failed with %d issue(s)", len(issues))
			}

			opts := []browser.ServerOption{}

			// Query history store (SQLite or in-memory)
			if cfg.History.Store == "sqlite" {
				if err := paths.EnsureDirs(); err != nil {
					return err
				}
				dbPath := filepath.Join(paths.Data, "history.db")
				db, err := history.Open(dbPath, log)
				if err != nil {
					return fmt.Errorf("opening history database: %w", err)
				}
				defer db.Close()
				opts = append(opts, browser.WithHistory(history.NewSQLiteStore(db)))
				log.Info().Str("path", dbPath).Msg("using SQLite query history")
			} else {
				opts = append(opts, browser.WithHistory(history.NewMemoryStore()))
				log.Info().Msg("using in-memory query history")
			}

			// Block until SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := browser.New(cfg, log, opts...)
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override browser port")
	cmd.Flags().StringVar(&bind, "bind", "", "override bind mode (all, loopback, custom)")

	return cmd
}
