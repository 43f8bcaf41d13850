package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/mtxik/AStarGrid/internal/grid"
)

// Draw paints a snapshot onto a new drawing context. Rows run along the x
// axis, columns along y, each cell scale pixels wide. A non-empty caption is
// written in the top-left corner.
func Draw(s grid.Snapshot, scale int, caption string) *gg.Context {
	size := s.Rows * scale
	dc := gg.NewContext(size, size)
	dc.SetColor(white)
	dc.Clear()

	for row, states := range s.States {
		for col, st := range states {
			dc.SetColor(Color(st))
			dc.DrawRectangle(float64(row*scale), float64(col*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}

	// grid lines on top of the cells
	if scale > 2 {
		dc.SetColor(GridLine)
		dc.SetLineWidth(1)
		for i := 0; i <= s.Rows; i++ {
			p := float64(i * scale)
			dc.DrawLine(0, p, float64(size), p)
			dc.DrawLine(p, 0, p, float64(size))
		}
		dc.Stroke()
	}

	if caption != "" {
		dc.SetFontFace(basicfont.Face7x13)
		w, h := dc.MeasureString(caption)
		dc.SetRGBA(1, 1, 1, 0.8)
		dc.DrawRectangle(0, 0, w+8, h+8)
		dc.Fill()
		dc.SetColor(black)
		dc.DrawStringAnchored(caption, 4, 4, 0, 1)
	}
	return dc
}

// SavePath draws the snapshot with the path as a line through cell centers,
// a circle on start and one on the last point, and writes it as PNG.
func SavePath(s grid.Snapshot, start grid.Point, path []grid.Point, filename string, scale int) error {
	dc := Draw(s, scale, "")
	center := func(p grid.Point) (float64, float64) {
		return float64(p.Row*scale + scale/2), float64(p.Col*scale + scale/2)
	}

	if len(path) > 0 {
		dc.SetColor(black)
		dc.SetLineWidth(float64(scale) / 3)
		dc.MoveTo(center(start))
		for _, p := range path {
			dc.LineTo(center(p))
		}
		dc.Stroke()

		x, y := center(start)
		dc.SetColor(orange)
		dc.DrawCircle(x, y, float64(scale)/2)
		dc.Fill()

		x, y = center(path[len(path)-1])
		dc.SetColor(turquoise)
		dc.DrawCircle(x, y, float64(scale)/2)
		dc.Fill()
	}
	return dc.SavePNG(filename)
}

// Frames writes one PNG per rendered step into a directory.
type Frames struct {
	dir     string
	every   int
	scale   int
	step    int
	written int
	err     error
}

// NewFrames creates dir if needed. Every every-th step is written.
func NewFrames(dir string, every, scale int) (*Frames, error) {
	if every < 1 {
		every = 1
	}
	if scale < 1 {
		scale = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frames dir: %w", err)
	}
	return &Frames{dir: dir, every: every, scale: scale}, nil
}

// Write renders the snapshot as the next step.
func (f *Frames) Write(s grid.Snapshot) error {
	f.step++
	if f.step%f.every != 0 {
		return nil
	}
	name := filepath.Join(f.dir, fmt.Sprintf("frame_%05d.png", f.step))
	caption := fmt.Sprintf("step %d  open %d  closed %d", f.step, s.Open, s.Closed)
	if err := Draw(s, f.scale, caption).SavePNG(name); err != nil {
		return fmt.Errorf("write frame %s: %w", name, err)
	}
	f.written++
	return nil
}

// Observer returns a step callback that snapshots g and writes a frame.
// The engine ignores callback errors, so the first one is kept for Err.
func (f *Frames) Observer(g *grid.Grid) func() {
	return func() {
		if f.err != nil {
			return
		}
		f.err = f.Write(g.Snapshot())
	}
}

// Written returns how many frames were saved.
func (f *Frames) Written() int { return f.written }

// Err returns the first error hit by an observer callback.
func (f *Frames) Err() error { return f.err }
