package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mtxik/AStarGrid/internal/metrics"
	"github.com/mtxik/AStarGrid/internal/runner"
	"github.com/mtxik/AStarGrid/internal/viz"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser viewer",
		Long:  `Serves a page that streams searches over a websocket, plus /healthz and /metrics.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				cfg.Viewer.Addr = addr
			}
			return serve(cmd.Context(), slog.Default())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

func serve(ctx context.Context, logger *slog.Logger) error {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := runner.New(cfg.Search.Heuristic,
		runner.WithLogger(logger),
		runner.WithMetrics(metrics.New(prometheus.DefaultRegisterer)))
	if err != nil {
		return err
	}
	srv := viz.NewServer(r, viz.Options{
		Width:     cfg.Grid.Width,
		StepDelay: cfg.Viewer.StepDelay,
		Gatherer:  prometheus.DefaultGatherer,
		Logger:    logger,
	})

	httpSrv := &http.Server{
		Addr:              cfg.Viewer.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("viewer listening", "addr", httpSrv.Addr, "heuristic", r.Heuristic())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down viewer")
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
