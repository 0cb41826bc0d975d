package codec

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/gridforge/internal/grid"
	"github.com/samdwyer/gridforge/internal/layout"
	"github.com/samdwyer/gridforge/internal/terrain"
)

func TestRoundTripGeneratedGrids(t *testing.T) {
	themes := terrain.MustLoadThemeRegistry()
	theme, _ := themes.Get("dungeon")

	for _, algorithm := range layout.Algorithms {
		t.Run(algorithm.String(), func(t *testing.T) {
			g, err := layout.Generate(context.Background(), layout.Spec{
				Width:     25,
				Height:    25,
				Seed:      12345,
				Algorithm: algorithm,
				Theme:     theme,
				Params:    layout.DefaultParams(),
			})
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			c := Compress(g)
			back, err := c.Decompress()
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !g.Equal(back) {
				t.Error("decode(encode(g)) != g")
			}
			if back.Seed != g.Seed || back.Theme != g.Theme {
				t.Error("Round trip lost seed/theme metadata")
			}

			// Any generated grid has long wall runs, so the ratio must be
			// strictly positive.
			if c.CompressionRatio <= 0 {
				t.Errorf("CompressionRatio = %v, want > 0", c.CompressionRatio)
			}
		})
	}
}

func TestUniformRowSingleSegment(t *testing.T) {
	g := grid.New(10, 3, "wall")
	c := Compress(g)

	for y, row := range c.Rows {
		if len(row.Segments) != 1 {
			t.Errorf("Uniform row %d has %d segments, want 1", y, len(row.Segments))
		} else if row.Segments[0] != (Segment{Terrain: "wall", Count: 10}) {
			t.Errorf("Row %d segment = %+v", y, row.Segments[0])
		}
	}
	want := 1 - float64(3)/float64(30)
	if c.CompressionRatio != want {
		t.Errorf("CompressionRatio = %v, want %v", c.CompressionRatio, want)
	}
}

func TestNoRunsZeroRatio(t *testing.T) {
	g := grid.New(2, 2, "wall")
	g.Set(1, 0, "empty")
	g.Set(0, 1, "empty")
	// Rows alternate wall/empty: every run has length 1.
	c := Compress(g)
	if c.CompressionRatio != 0 {
		t.Errorf("CompressionRatio = %v, want 0 for a grid with no runs", c.CompressionRatio)
	}
}

func TestCompactStringRoundTrip(t *testing.T) {
	g := grid.New(6, 4, "wall")
	g.Seed = 12345
	g.Theme = "cave"
	g.Set(2, 1, "empty")
	g.Set(3, 1, "empty")
	g.Set(2, 2, "water")

	s := Compress(g).CompactString()
	parsed, err := ParseCompactString(s)
	if err != nil {
		t.Fatalf("ParseCompactString failed: %v", err)
	}
	if parsed.CompactString() != s {
		t.Errorf("Re-encoding the parsed string changed it:\n%s\n%s", parsed.CompactString(), s)
	}

	back, err := parsed.Decompress()
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !g.Equal(back) {
		t.Error("Compact string round trip changed the grid")
	}
	if back.Seed != 12345 || back.Theme != "cave" {
		t.Errorf("Metadata lost: seed=%d theme=%q", back.Seed, back.Theme)
	}
}

// The exact wire form for this seed/parameter tuple is pinned. Any change to
// generation draw order, the stream recurrence, theme data, or the codec
// grammar shows up as a diff here; such a change breaks every stored map and
// must come with a version bump.
func TestGenerateKnownSeedWireForm(t *testing.T) {
	const want = "25x25|12345|dungeon|1.0.0|wall:25|wall:25|wall:2,empty:1,pit:1,rubble:1,wall:16,empty:2,wall:2|wall:2,empty:21,wall:2|wall:2,empty:3,wall:4,empty:14,wall:2|wall:9,empty:1,wall:15|wall:9,empty:1,wall:15|wall:9,empty:1,wall:10,empty:2,wall:3|wall:9,empty:1,wall:10,empty:2,wall:3|wall:2,rubble:1,empty:5,rubble:1,empty:2,rubble:1,pillar:1,pit:1,empty:2,pillar:1,wall:3,pillar:1,empty:1,wall:3|wall:2,pillar:1,empty:2,rubble:2,empty:10,wall:3,empty:1,altar:1,wall:3|wall:2,rubble:1,empty:1,rubble:1,empty:1,pillar:1,empty:3,pillar:1,empty:6,wall:3,empty:2,wall:3|wall:8,empty:1,wall:11,empty:2,wall:3|wall:8,empty:1,wall:11,empty:2,wall:3|wall:8,empty:1,wall:11,empty:2,wall:3|wall:8,empty:1,wall:11,empty:2,wall:3|wall:6,pillar:1,empty:3,rubble:1,wall:9,empty:2,wall:3|wall:6,empty:16,wall:3|wall:6,empty:1,altar:1,empty:1,rubble:1,empty:1,wall:10,empty:1,wall:3|wall:21,empty:1,wall:3|wall:21,empty:1,wall:3|wall:20,empty:2,wall:3|wall:20,empty:2,wall:3|wall:25|wall:25"

	themes := terrain.MustLoadThemeRegistry()
	theme, _ := themes.Get("dungeon")
	params, err := layout.FromKnobs(map[string]float64{
		"minRoomSize":   4,
		"maxRooms":      8,
		"corridorWidth": 1,
	})
	if err != nil {
		t.Fatalf("FromKnobs failed: %v", err)
	}

	g, err := layout.Generate(context.Background(), layout.Spec{
		Width:     25,
		Height:    25,
		Seed:      12345,
		Algorithm: layout.Partition,
		Theme:     theme,
		Params:    params,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if got := Compress(g).CompactString(); got != want {
		t.Errorf("Seed 12345 partition output drifted:\n got %s\nwant %s", got, want)
	}
}

func TestParseKnownVector(t *testing.T) {
	s := "3x2|1|dungeon|1.0.0|wall:3|empty:2,wall:1"
	c, err := ParseCompactString(s)
	if err != nil {
		t.Fatalf("ParseCompactString failed: %v", err)
	}

	g, err := c.Decompress()
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}

	want := [][]string{
		{"wall", "wall", "wall"},
		{"empty", "empty", "wall"},
	}
	for y, row := range want {
		for x, id := range row {
			if g.Get(x, y) != id {
				t.Errorf("Cell (%d,%d) = %q, want %q", x, y, g.Get(x, y), id)
			}
		}
	}
	if g.Seed != 1 || g.Theme != "dungeon" {
		t.Errorf("Header mismatch: seed=%d theme=%q", g.Seed, g.Theme)
	}
	if c.CompactString() != s {
		t.Errorf("Re-encoding changed the string: %s", c.CompactString())
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no rows", "3x2|1|dungeon|1.0.0"},
		{"row count under height", "3x2|1|dungeon|1.0.0|wall:3"},
		{"row count over height", "3x2|1|dungeon|1.0.0|wall:3|wall:3|wall:3"},
		{"row sum under width", "3x2|1|dungeon|1.0.0|wall:2|wall:3"},
		{"row sum over width", "3x2|1|dungeon|1.0.0|wall:4|wall:3"},
		{"zero run length", "3x2|1|dungeon|1.0.0|wall:3|empty:0,wall:3"},
		{"negative run length", "3x2|1|dungeon|1.0.0|wall:3|empty:-1,wall:4"},
		{"missing count", "3x2|1|dungeon|1.0.0|wall:3|wall"},
		{"empty terrain", "3x2|1|dungeon|1.0.0|wall:3|:3"},
		{"bad dimensions", "3by2|1|dungeon|1.0.0|wall:3|wall:3"},
		{"zero width", "0x2|1|dungeon|1.0.0||"},
		{"negative seed", "3x2|-1|dungeon|1.0.0|wall:3|wall:3"},
		{"empty theme", "3x2|1||1.0.0|wall:3|wall:3"},
		{"wrong version", "3x2|1|dungeon|2.0.0|wall:3|wall:3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCompactString(tc.input)
			if err == nil {
				t.Fatalf("Expected error for %q", tc.input)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Error %v should wrap ErrMalformed", err)
			}
		})
	}
}

func TestDecompressRejectsInvalid(t *testing.T) {
	c := &CompressedGrid{
		Width:  3,
		Height: 2,
		Rows: []Row{
			{Y: 0, Segments: []Segment{{Terrain: "wall", Count: 3}}},
		},
	}
	if _, err := c.Decompress(); !errors.Is(err, ErrMalformed) {
		t.Errorf("Row count mismatch should wrap ErrMalformed, got %v", err)
	}

	c.Rows = append(c.Rows, Row{Y: 1, Segments: []Segment{{Terrain: "wall", Count: 2}}})
	if _, err := c.Decompress(); !errors.Is(err, ErrMalformed) {
		t.Errorf("Short row should wrap ErrMalformed, got %v", err)
	}

	c.Rows[1].Segments[0].Count = 3
	if _, err := c.Decompress(); err != nil {
		t.Errorf("Valid compressed grid rejected: %v", err)
	}
}
