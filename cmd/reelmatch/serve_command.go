package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"reelmatch/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the reconciliation HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg, os.Stderr)
			if err != nil {
				return err
			}

			client, err := newCatalogClient(cfg)
			if err != nil {
				return err
			}
			resolver := newResolver(cfg, client, logger)
			extender := newExtender(cfg, client, logger)

			srv, err := server.New(cfg.Service.Bind, cfg.Service.BaseURL, resolver, extender, logger)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return srv.Run(runCtx)
		},
	}
}
