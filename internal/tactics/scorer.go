// Package tactics ranks grid positions for adversary placement using cover,
// flanking and mobility heuristics. Scoring is a pure function over a
// finished grid; it never draws from the generation stream.
package tactics

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridforge/internal/grid"
	"github.com/samdwyer/gridforge/internal/telemetry"
	"github.com/samdwyer/gridforge/internal/terrain"
)

// Heuristic weights of the tactical value formula.
const (
	coverWeight     = 10
	flankingWeight  = 5
	mobilityWeight  = 3
	elevationWeight = 2

	// A position needs this many open neighbors to avoid being a dead end.
	minOpenNeighbors = 2
)

// Position is a scored placement candidate. It is derived, read-only data,
// recomputed on every call and never persisted.
type Position struct {
	Pos      grid.Position // Cell coordinate
	Terrain  string        // Terrain id at the cell
	Score    float64       // Weighted tactical value
	Cover    float64       // Cover contribution before weighting
	Flanking int           // Open approach lanes around the position
	Mobility float64       // Cardinal movement contribution before weighting
}

// Scorer computes tactical values against a terrain catalog.
type Scorer struct {
	catalog *terrain.Catalog
}

// NewScorer creates a scorer using the given terrain catalog.
func NewScorer(catalog *terrain.Catalog) *Scorer {
	return &Scorer{catalog: catalog}
}

// Rank returns every eligible position sorted by descending tactical value.
// Ties keep grid scan order (row-major) so the ranking is deterministic.
func (s *Scorer) Rank(ctx context.Context, g *grid.Grid) []Position {
	tracer := telemetry.Tracer("tactics")
	_, span := tracer.Start(ctx, "tactics.rank")
	defer span.End()

	positions := make([]Position, 0)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if p, ok := s.score(g, x, y); ok {
				positions = append(positions, p)
			}
		}
	}

	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].Score > positions[j].Score
	})

	span.SetAttributes(attribute.Int("tactics.candidates", len(positions)))
	return positions
}

// Top returns the n best positions.
func (s *Scorer) Top(ctx context.Context, g *grid.Grid, n int) []Position {
	ranked := s.Rank(ctx, g)
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// score evaluates a single cell, reporting false for ineligible positions:
// obstructing terrain, hazards, and dead ends.
func (s *Scorer) score(g *grid.Grid, x, y int) (Position, bool) {
	def := s.catalog.Get(g.Get(x, y))
	if def.BlocksMovement || def.Hazard {
		return Position{}, false
	}

	open := 0
	for _, d := range grid.Neighborhood {
		if !s.blocks(g, x+d.X, y+d.Y) {
			open++
		}
	}
	if open < minOpenNeighbors {
		return Position{}, false
	}

	cover := 0.0
	flanking := 0
	for _, d := range grid.Neighborhood {
		nd := s.catalog.Get(g.Get(x+d.X, y+d.Y))
		if nd.BlocksSight {
			cover += 1.0
		} else if nd.PartialCover {
			cover += 0.5
		}
		if !nd.BlocksMovement && s.openLanes(g, x+d.X, y+d.Y) >= 3 {
			flanking++
		}
	}

	mobility := 0.0
	for _, d := range grid.Cardinal {
		nd := s.catalog.Get(g.Get(x+d.X, y+d.Y))
		if nd.BlocksMovement {
			continue
		}
		if gain := 3 - nd.MovementCost; gain > 0 {
			mobility += gain
		}
	}

	value := def.TacticalValue +
		coverWeight*cover +
		flankingWeight*float64(flanking) +
		mobilityWeight*mobility +
		elevationWeight*def.Elevation

	return Position{
		Pos:      grid.Position{X: x, Y: y},
		Terrain:  g.Get(x, y),
		Score:    value,
		Cover:    cover,
		Flanking: flanking,
		Mobility: mobility,
	}, true
}

// blocks reports whether the cell obstructs movement. Out-of-bounds cells
// obstruct.
func (s *Scorer) blocks(g *grid.Grid, x, y int) bool {
	return s.catalog.Get(g.Get(x, y)).BlocksMovement
}

// openLanes counts the cardinal neighbors of a cell that do not obstruct
// movement: the approach lanes a flanker could arrive through.
func (s *Scorer) openLanes(g *grid.Grid, x, y int) int {
	lanes := 0
	for _, d := range grid.Cardinal {
		if !s.blocks(g, x+d.X, y+d.Y) {
			lanes++
		}
	}
	return lanes
}
