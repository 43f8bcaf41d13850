// Package window puts an app.Controller behind an ebiten window.
//
// Left mouse places start, end and barriers; right mouse clears a cell;
// SPACE runs the search; C clears the board. Closing the window cancels a
// running search before the loop exits.
package window

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mtxik/AStarGrid/internal/app"
	"github.com/mtxik/AStarGrid/internal/render"
)

// Title is the window caption.
const Title = "A* Path Finding Algorithm"

// Game implements ebiten.Game.
type Game struct {
	ctx  context.Context
	ctrl *app.Controller
}

// New wraps ctrl. Searches started from the window derive from ctx.
func New(ctx context.Context, ctrl *app.Controller) *Game {
	return &Game{ctx: ctx, ctrl: ctrl}
}

// Update handles input and advances a running search by at most one step.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || g.ctx.Err() != nil {
		g.ctrl.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.Stop()
		return ebiten.Termination
	}

	g.ctrl.Poll()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Primary(ebiten.CursorPosition())
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.ctrl.Secondary(ebiten.CursorPosition())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.Run(g.ctx)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Clear()
	}
	return nil
}

// Draw paints the grid; rows run along x.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.ctrl.Snapshot()
	size := float32(g.ctrl.CellSize())
	span := size * float32(snap.Rows)

	for row, states := range snap.States {
		for col, st := range states {
			vector.DrawFilledRect(screen, float32(row)*size, float32(col)*size, size, size, render.Color(st), false)
		}
	}
	for i := 0; i <= snap.Rows; i++ {
		p := float32(i) * size
		vector.StrokeLine(screen, 0, p, span, p, 1, render.GridLine, false)
		vector.StrokeLine(screen, p, 0, p, span, 1, render.GridLine, false)
	}

	if g.ctrl.Searching() {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("step %d  open %d  closed %d", snap.Step, snap.Open, snap.Closed))
	} else if res, ok := g.ctrl.LastResult(); ok {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  expanded %d  path %d", res.Outcome, res.Stats.Expanded, len(res.Path)))
	}
}

// Layout keeps the logical screen square at the grid width.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.ctrl.Width()
	return w, w
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, ctrl *app.Controller) error {
	w := ctrl.Width()
	ebiten.SetWindowSize(w, w)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(New(ctx, ctrl)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
