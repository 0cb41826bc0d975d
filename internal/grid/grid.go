// Package grid provides the terrain grid and geometry types shared by the
// construction algorithms, the tactical scorer and the compression codec.
package grid

// Position is an integer cell coordinate with 0 <= X < width and
// 0 <= Y < height.
type Position struct {
	X, Y int
}

// Cardinal holds the four cardinal direction offsets (N, S, W, E).
var Cardinal = [4]Position{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Neighborhood holds the eight surrounding offsets, row-major.
var Neighborhood = [8]Position{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a rectangular, fully-populated matrix of terrain ids.
// Cells is indexed Cells[y][x]. A Grid is mutable while an algorithm builds
// it; once returned to a caller it must be treated as read-only. Corrections
// require producing a new Grid.
type Grid struct {
	Width  int
	Height int
	Seed   int64  // Seed the grid was generated from
	Theme  string // Theme id the grid was generated with
	Cells  [][]string
}

// New creates a grid with every cell set to the given terrain id.
func New(width, height int, fill string) *Grid {
	cells := make([][]string, height)
	for y := range cells {
		cells[y] = make([]string, width)
		for x := range cells[y] {
			cells[y][x] = fill
		}
	}
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the terrain id at the given position, or the empty string for
// out-of-bounds reads. Consumers treat out-of-bounds cells as obstructing.
func (g *Grid) Get(x, y int) string {
	if !g.InBounds(x, y) {
		return ""
	}
	return g.Cells[y][x]
}

// Set assigns the terrain id at the given position. Out-of-bounds writes are
// ignored.
func (g *Grid) Set(x, y int, id string) {
	if g.InBounds(x, y) {
		g.Cells[y][x] = id
	}
}

// Fill assigns the terrain id to every cell.
func (g *Grid) Fill(id string) {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = id
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]string, g.Height)
	for y := range cells {
		cells[y] = make([]string, g.Width)
		copy(cells[y], g.Cells[y])
	}
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		Seed:   g.Seed,
		Theme:  g.Theme,
		Cells:  cells,
	}
}

// Equal reports whether two grids have the same dimensions and identical
// cells. Seed and theme metadata are not compared.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x] != other.Cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of cells holding the given terrain id.
func (g *Grid) Count(id string) int {
	count := 0
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x] == id {
				count++
			}
		}
	}
	return count
}

// Histogram returns the number of cells per terrain id.
func (g *Grid) Histogram() map[string]int {
	hist := make(map[string]int)
	for y := range g.Cells {
		for x := range g.Cells[y] {
			hist[g.Cells[y][x]]++
		}
	}
	return hist
}
