package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mtxik/AStarGrid/internal/app"
	"github.com/mtxik/AStarGrid/internal/app/window"
	"github.com/mtxik/AStarGrid/internal/runner"
)

func newPlayCmd() *cobra.Command {
	var (
		rows      int
		heuristic string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the grid editor window",
		Long: `Opens an editor window. Left click places the start, then the end, then barriers.
Right click clears a cell. SPACE runs the search, C clears the board.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("rows") {
				cfg.Grid.Rows = rows
			}
			if cmd.Flags().Changed("heuristic") {
				cfg.Search.Heuristic = heuristic
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := slog.Default()
			r, err := runner.New(cfg.Search.Heuristic, runner.WithLogger(logger))
			if err != nil {
				return err
			}
			ctrl, err := app.NewController(cfg.Grid.Rows, cfg.Grid.Width, r, cfg.Search.StepDelay, logger)
			if err != nil {
				return err
			}
			logger.Info("opening editor", "rows", cfg.Grid.Rows, "width", cfg.Grid.Width, "heuristic", r.Heuristic())
			return window.Run(cmd.Context(), ctrl)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 0, "rows of the grid (default from config)")
	cmd.Flags().StringVar(&heuristic, "heuristic", "", "heuristic (default from config)")
	return cmd
}
