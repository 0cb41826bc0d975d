package layout

import (
	"github.com/samdwyer/gridforge/internal/grid"
	"github.com/samdwyer/gridforge/internal/rng"
	"github.com/samdwyer/gridforge/internal/terrain"
)

// generateTemplate starts from a fixed skeleton - a bordered rectangle with
// one large central open chamber - then applies the theme feature pass for
// per-seed variety without changing the overall shape.
func generateTemplate(g *grid.Grid, stream *rng.Stream, theme terrain.ThemeDef, params Params) {
	x0, y0 := g.Width/4, g.Height/4
	x1, y1 := g.Width-g.Width/4-1, g.Height-g.Height/4-1

	// The chamber never touches the permanent wall border.
	if x0 < 1 {
		x0 = 1
	}
	if y0 < 1 {
		y0 = 1
	}
	if x1 > g.Width-2 {
		x1 = g.Width - 2
	}
	if y1 > g.Height-2 {
		y1 = g.Height - 2
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.Set(x, y, theme.Floor)
		}
	}

	sprinkleFeatures(g, stream, theme, theme.FeatureChance)
}
