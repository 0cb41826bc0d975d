package layout

import (
	"github.com/samdwyer/gridforge/internal/grid"
	"github.com/samdwyer/gridforge/internal/rng"
	"github.com/samdwyer/gridforge/internal/terrain"
)

// generateAutomaton grows an organic cave: a random initial fill followed by
// synchronous neighbor-count iterations, then a themed feature sprinkle.
func generateAutomaton(g *grid.Grid, stream *rng.Stream, theme terrain.ThemeDef, params Params) {
	// Every cell flips open independently with the initial fill probability.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if stream.Chance(params.InitialFill) {
				g.Set(x, y, theme.Floor)
			}
		}
	}

	for i := 0; i < params.Iterations; i++ {
		automatonStep(g, theme, params)
	}

	sprinkleFeatures(g, stream, theme, theme.FeatureChance)
}

// automatonStep applies one synchronous update over the interior cells. All
// reads come from a snapshot of the previous iteration, so update order
// within the pass cannot leak into the result.
func automatonStep(g *grid.Grid, theme terrain.ThemeDef, params Params) {
	prev := g.Clone()
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			open := countOpenNeighbors(prev, x, y, theme.Floor)
			if prev.Get(x, y) == theme.Floor {
				if open < params.DeathLimit {
					g.Set(x, y, theme.Wall)
				}
			} else {
				if open > params.BirthLimit {
					g.Set(x, y, theme.Floor)
				}
			}
		}
	}
}

// countOpenNeighbors counts 8-neighborhood cells holding the open terrain.
func countOpenNeighbors(g *grid.Grid, x, y int, floor string) int {
	open := 0
	for _, d := range grid.Neighborhood {
		if g.Get(x+d.X, y+d.Y) == floor {
			open++
		}
	}
	return open
}

// sprinkleFeatures replaces a random subset of open cells with themed
// decorative or hazard terrain. One chance draw per open cell, row-major,
// plus a weighted pick per hit.
func sprinkleFeatures(g *grid.Grid, stream *rng.Stream, theme terrain.ThemeDef, chance float64) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Get(x, y) != theme.Floor {
				continue
			}
			if !stream.Chance(chance) {
				continue
			}
			g.Set(x, y, theme.PickFeature(stream))
		}
	}
}
