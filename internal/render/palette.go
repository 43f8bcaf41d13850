// Package render draws grid snapshots: PNG frames through gg and colored
// terminal frames through lipgloss. Renderers consume grid.Snapshot values and
// never read a grid that a search is writing.
package render

import (
	"fmt"
	"image/color"

	"github.com/mtxik/AStarGrid/internal/grid"
)

var (
	white     = color.RGBA{255, 255, 255, 255}
	black     = color.RGBA{0, 0, 0, 255}
	orange    = color.RGBA{255, 165, 0, 255}
	turquoise = color.RGBA{64, 224, 208, 255}
	green     = color.RGBA{0, 255, 0, 255}
	red       = color.RGBA{255, 0, 0, 255}
	purple    = color.RGBA{128, 0, 128, 255}

	// GridLine is the color of the lines between cells.
	GridLine = color.RGBA{128, 128, 128, 255}
)

// Color returns the fill color of a cell state.
func Color(s grid.State) color.RGBA {
	switch s {
	case grid.Empty:
		return white
	case grid.Barrier:
		return black
	case grid.Start:
		return orange
	case grid.End:
		return turquoise
	case grid.Open:
		return green
	case grid.Closed:
		return red
	case grid.Path:
		return purple
	default:
		return white
	}
}

// Hex formats a color as #RRGGBB.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
