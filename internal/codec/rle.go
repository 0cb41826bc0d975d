// Package codec compresses grids with run-length encoding and serializes
// them to a compact, pipe-delimited string wire form. Decoding reproduces
// the originating grid cell for cell.
package codec

import (
	"errors"
	"fmt"

	"github.com/samdwyer/gridforge/internal/grid"
)

// ErrMalformed is wrapped by every decode error caused by invalid input:
// row counts that do not match the declared height, rows whose run lengths
// do not sum to the declared width, and unparseable segments. Decoding
// rejects such input outright rather than truncating or padding.
var ErrMalformed = errors.New("malformed compressed grid")

// Segment is one run of identical terrain: the id and how often it repeats.
type Segment struct {
	Terrain string
	Count   int
}

// Row is the run-length form of one grid row. Segment counts sum to the
// grid width.
type Row struct {
	Y        int
	Segments []Segment
}

// CompressedGrid is the unit of storage and transmission for a grid.
type CompressedGrid struct {
	Width            int
	Height           int
	Rows             []Row
	Seed             int64
	Theme            string
	CompressionRatio float64
}

// Compress run-length encodes a grid. A row of uniform terrain produces
// exactly one segment.
func Compress(g *grid.Grid) *CompressedGrid {
	rows := make([]Row, g.Height)
	segments := 0
	for y := 0; y < g.Height; y++ {
		row := Row{Y: y}
		for x := 0; x < g.Width; x++ {
			id := g.Cells[y][x]
			if n := len(row.Segments); n > 0 && row.Segments[n-1].Terrain == id {
				row.Segments[n-1].Count++
			} else {
				row.Segments = append(row.Segments, Segment{Terrain: id, Count: 1})
			}
		}
		segments += len(row.Segments)
		rows[y] = row
	}

	return &CompressedGrid{
		Width:            g.Width,
		Height:           g.Height,
		Rows:             rows,
		Seed:             g.Seed,
		Theme:            g.Theme,
		CompressionRatio: 1 - float64(segments)/float64(g.Width*g.Height),
	}
}

// Decompress re-expands every row back into a grid. It validates the
// segment sums and row count so a corrupted CompressedGrid cannot produce a
// partially-filled grid.
func (c *CompressedGrid) Decompress() (*grid.Grid, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrMalformed, c.Width, c.Height)
	}
	if len(c.Rows) != c.Height {
		return nil, fmt.Errorf("%w: %d rows for declared height %d", ErrMalformed, len(c.Rows), c.Height)
	}

	g := grid.New(c.Width, c.Height, "")
	g.Seed = c.Seed
	g.Theme = c.Theme

	for i, row := range c.Rows {
		if row.Y != i {
			return nil, fmt.Errorf("%w: row %d tagged y=%d", ErrMalformed, i, row.Y)
		}
		x := 0
		for _, seg := range row.Segments {
			if seg.Count < 1 {
				return nil, fmt.Errorf("%w: row %d has run length %d", ErrMalformed, i, seg.Count)
			}
			if seg.Terrain == "" {
				return nil, fmt.Errorf("%w: row %d has empty terrain id", ErrMalformed, i)
			}
			if x+seg.Count > c.Width {
				return nil, fmt.Errorf("%w: row %d runs sum past width %d", ErrMalformed, i, c.Width)
			}
			for k := 0; k < seg.Count; k++ {
				g.Cells[i][x+k] = seg.Terrain
			}
			x += seg.Count
		}
		if x != c.Width {
			return nil, fmt.Errorf("%w: row %d runs sum to %d, want %d", ErrMalformed, i, x, c.Width)
		}
	}

	return g, nil
}
