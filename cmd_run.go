package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mtxik/AStarGrid/internal/astar"
	"github.com/mtxik/AStarGrid/internal/config"
	"github.com/mtxik/AStarGrid/internal/grid"
	"github.com/mtxik/AStarGrid/internal/render"
	"github.com/mtxik/AStarGrid/internal/report"
	"github.com/mtxik/AStarGrid/internal/runner"
)

var errNoEndpoints = errors.New("map must contain one S and one E")

type runOptions struct {
	mapFile    string
	output     string
	heuristics []string
	pngDir     string
	framesDir  string
	show       bool
	showEvery  int
	scale      int
	frameEvery int
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compare heuristics on a map file",
		Long: `Runs one search per heuristic over the same map, writes a comparison report and
draws each path to <heuristic>_path.png.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("scale") {
				opts.scale = cfg.Render.Scale
			}
			if !cmd.Flags().Changed("frames") {
				opts.framesDir = cfg.Render.FramesDir
			}
			opts.frameEvery = cfg.Render.FrameEvery
			return runCompare(cmd.Context(), opts, cmd.OutOrStdout(), slog.Default())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.mapFile, "map", "m", "", "map file (required)")
	f.StringVarP(&opts.output, "output", "o", "output.txt", "report file")
	f.StringSliceVar(&opts.heuristics, "heuristics", []string{"dijkstra", "manhattan", "euclidean", "chebyshev"}, "heuristics to compare")
	f.StringVar(&opts.pngDir, "png", ".", "directory for the path images")
	f.StringVar(&opts.framesDir, "frames", "", "write a PNG per search step under this directory")
	f.BoolVar(&opts.show, "show", false, "print search frames to the terminal")
	f.IntVar(&opts.showEvery, "show-every", 1, "print every n-th frame with --show")
	f.IntVar(&opts.scale, "scale", config.Default().Render.Scale, "pixels per cell in images")
	_ = cmd.MarkFlagRequired("map")
	return cmd
}

// algorithmName is the report label for a heuristic.
func algorithmName(heuristic string) string {
	if heuristic == "dijkstra" {
		return "Dijkstra"
	}
	return fmt.Sprintf("A* (%s)", heuristic)
}

func runCompare(ctx context.Context, opts runOptions, out io.Writer, logger *slog.Logger) error {
	if len(opts.heuristics) == 0 {
		return errors.New("no heuristics given")
	}
	for _, h := range opts.heuristics {
		if _, err := astar.HeuristicByName(h); err != nil {
			return err
		}
	}
	if opts.pngDir != "" {
		if err := os.MkdirAll(opts.pngDir, 0o755); err != nil {
			return fmt.Errorf("create png dir: %w", err)
		}
	}

	entries := make([]report.Entry, 0, len(opts.heuristics))
	for _, h := range opts.heuristics {
		fmt.Fprintf(out, "Running %s...\n", algorithmName(h))
		entry, err := runOne(ctx, h, opts, out, logger)
		if err != nil {
			return fmt.Errorf("%s: %w", h, err)
		}
		entries = append(entries, entry)
	}

	if err := report.WriteFile(opts.output, entries); err != nil {
		return err
	}
	fmt.Fprintln(out, "Results written to", opts.output)
	return nil
}

// runOne searches a freshly loaded copy of the map so runs do not share state.
func runOne(ctx context.Context, heuristic string, opts runOptions, out io.Writer, logger *slog.Logger) (report.Entry, error) {
	g, err := loadMap(opts.mapFile)
	if err != nil {
		return report.Entry{}, err
	}
	e := grid.EditorFor(g)
	if !e.Ready() {
		return report.Entry{}, errNoEndpoints
	}

	r, err := runner.New(heuristic, runner.WithLogger(logger))
	if err != nil {
		return report.Entry{}, err
	}

	var observers []func()
	var frames *render.Frames
	if opts.framesDir != "" {
		frames, err = render.NewFrames(filepath.Join(opts.framesDir, heuristic), opts.frameEvery, opts.scale)
		if err != nil {
			return report.Entry{}, err
		}
		observers = append(observers, frames.Observer(g))
	}
	var term *render.Terminal
	if opts.show {
		term = render.NewTerminal(out, opts.showEvery)
		observers = append(observers, term.Observer(g))
	}
	onStep := func() {
		for _, o := range observers {
			o()
		}
	}

	res, err := r.RunEditor(ctx, e, onStep)
	if err != nil {
		return report.Entry{}, err
	}
	if frames != nil && frames.Err() != nil {
		return report.Entry{}, frames.Err()
	}
	if term != nil && term.Err() != nil {
		return report.Entry{}, term.Err()
	}

	final := g.Snapshot()
	if term != nil {
		if err := term.Final(fmt.Sprintf("%s: %s", algorithmName(heuristic), res.Outcome), final); err != nil {
			return report.Entry{}, err
		}
	}
	if opts.pngDir != "" {
		name := filepath.Join(opts.pngDir, heuristic+"_path.png")
		if err := render.SavePath(final, e.Start().Pos(), res.Path, name, opts.scale); err != nil {
			return report.Entry{}, fmt.Errorf("save %s: %w", name, err)
		}
	}
	return report.NewEntry(algorithmName(heuristic), e.Start().Pos(), res), nil
}

func loadMap(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	// images are drawn at --scale, so the grid's own pixel width is irrelevant
	g, err := grid.Parse(f, 0)
	if err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}
	return g, nil
}
