package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/DrSkyle/timeslash/internal/server"
	"github.com/DrSkyle/timeslash/internal/version"
	"github.com/DrSkyle/timeslash/pkg/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP resolution API",
	Long: `Expose expression resolution over HTTP on the configured listen
address (default :8080).

Endpoints:
  GET  /healthz
  GET  /v1/resolve?expr=now-1h
  POST /v1/resolve        (batch)
  GET  /v1/range?from=now-7d/d&to=now/d
  GET  /v1/parse?expr=now-1d/d`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		shutdown, err := telemetry.Init(ctx, "timeslash", version.Current, cfg.Settings.OTLPEndpoint)
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				log.Warn("trace shutdown", zap.Error(err))
			}
		}()

		if serveListen != "" {
			cfg.Settings.Listen = serveListen
		}
		return server.New(log, cfg.Settings).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
