package layout

import (
	"github.com/samdwyer/gridforge/internal/grid"
	"github.com/samdwyer/gridforge/internal/rng"
	"github.com/samdwyer/gridforge/internal/terrain"
)

const (
	branchMinSteps = 10
	branchMaxSteps = 60
)

// generateWalk carves corridors with a randomly stepping cursor. The cursor
// starts at the grid center; out-of-bounds moves are skipped with the cursor
// holding position. Each step may spawn one non-recursing side walk.
func generateWalk(g *grid.Grid, stream *rng.Stream, theme terrain.ThemeDef, params Params) {
	x, y := g.Width/2, g.Height/2
	g.Set(x, y, theme.Floor)

	for step := 0; step < params.Steps; step++ {
		d := grid.Cardinal[stream.Intn(4)]
		if g.InBounds(x+d.X, y+d.Y) {
			x, y = x+d.X, y+d.Y
			g.Set(x, y, theme.Floor)
		}

		if stream.Chance(params.BranchChance) {
			walkBranch(g, stream, theme, x, y)
		}
	}
}

// walkBranch carves a short secondary corridor from the given position.
// Branches never spawn further branches.
func walkBranch(g *grid.Grid, stream *rng.Stream, theme terrain.ThemeDef, x, y int) {
	length := stream.Range(branchMinSteps, branchMaxSteps)
	for i := 0; i < length; i++ {
		d := grid.Cardinal[stream.Intn(4)]
		if g.InBounds(x+d.X, y+d.Y) {
			x, y = x+d.X, y+d.Y
			g.Set(x, y, theme.Floor)
		}
	}
}
