package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cayley/internal/httpapi"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP analysis server",
		Long:  `Serves POST /analyze, GET /healthz and GET /metrics until interrupted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := httpapi.NewServer(httpapi.Options{
				Logger:      a.log,
				MaxElements: a.cfg.Analysis.MaxElements,
				Parallel:    a.cfg.Analysis.Parallel,
			})

			return httpapi.ListenAndServe(ctx, a.cfg.Server.Addr, srv.Handler(),
				a.cfg.Server.ReadTimeout, a.cfg.Server.ShutdownTimeout, a.log)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from config, :8080)")
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
