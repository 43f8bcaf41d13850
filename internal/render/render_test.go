package render

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtxik/AStarGrid/internal/astar"
	"github.com/mtxik/AStarGrid/internal/grid"
)

const maze = `
S...
.##.
....
...E
`

func loadMaze(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(strings.NewReader(maze), 40)
	require.NoError(t, err)
	g.ComputeNeighbors()
	return g
}

func TestColor(t *testing.T) {
	assert.Equal(t, "#000000", Hex(Color(grid.Barrier)))
	assert.Equal(t, "#FFA500", Hex(Color(grid.Start)))
	assert.Equal(t, "#40E0D0", Hex(Color(grid.End)))
	assert.Equal(t, "#800080", Hex(Color(grid.Path)))
}

func TestDraw_CellColors(t *testing.T) {
	g := loadMaze(t)
	img := Draw(g.Snapshot(), 10, "").Image()

	assert.Equal(t, 40, img.Bounds().Dx())
	// rows along x: cell (1,1) is a barrier, centered at x=15 y=15
	r, gr, b, _ := img.At(15, 15).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r >> 8, gr >> 8, b >> 8})
	r, gr, b, _ = img.At(5, 5).RGBA()
	assert.Equal(t, [3]uint32{255, 165, 0}, [3]uint32{r >> 8, gr >> 8, b >> 8})
}

func TestFrames_Observer(t *testing.T) {
	g := loadMaze(t)
	dir := filepath.Join(t.TempDir(), "frames")
	frames, err := NewFrames(dir, 2, 8)
	require.NoError(t, err)

	res, err := astar.Search(context.Background(), g, g.Find(grid.Start), g.Find(grid.End), frames.Observer(g))
	require.NoError(t, err)
	require.NoError(t, frames.Err())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, res.Stats.Steps/2)
	assert.Equal(t, len(entries), frames.Written())

	f, err := os.Open(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
}

func TestSavePath(t *testing.T) {
	g := loadMaze(t)
	start := g.Find(grid.Start)
	res, err := astar.Search(context.Background(), g, start, g.Find(grid.End), nil)
	require.NoError(t, err)

	name := filepath.Join(t.TempDir(), "path.png")
	require.NoError(t, SavePath(g.Snapshot(), start.Pos(), res.Path, name, 12))

	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestTerminal(t *testing.T) {
	g := loadMaze(t)
	var out bytes.Buffer
	term := NewTerminal(&out, 1)

	_, err := astar.Search(context.Background(), g, g.Find(grid.Start), g.Find(grid.End), term.Observer(g))
	require.NoError(t, err)
	require.NoError(t, term.Err())

	assert.Contains(t, out.String(), "step 1")
	assert.Contains(t, out.String(), "open 2")
}

func TestText(t *testing.T) {
	g := loadMaze(t)
	text := Text(g.Snapshot())
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "SS")
	assert.Contains(t, lines[1], "##")
}
