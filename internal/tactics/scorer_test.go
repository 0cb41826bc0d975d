package tactics

import (
	"context"
	"testing"

	"github.com/samdwyer/gridforge/internal/grid"
	"github.com/samdwyer/gridforge/internal/terrain"
)

// openField builds a walled grid with an all-open interior.
func openField(w, h int) *grid.Grid {
	g := grid.New(w, h, "wall")
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			g.Set(x, y, "empty")
		}
	}
	return g
}

func TestRankExcludesObstructingAndHazards(t *testing.T) {
	scorer := NewScorer(terrain.MustLoadCatalog())
	g := openField(7, 7)
	g.Set(3, 3, "pit")
	g.Set(4, 3, "lava")
	g.Set(2, 2, "pillar")

	ranked := scorer.Rank(context.Background(), g)
	for _, p := range ranked {
		if p.Terrain == "pit" || p.Terrain == "lava" || p.Terrain == "pillar" || p.Terrain == "wall" {
			t.Errorf("Ineligible terrain %q ranked at %v", p.Terrain, p.Pos)
		}
	}
	if len(ranked) == 0 {
		t.Fatal("Open field should produce candidates")
	}
}

func TestRankExcludesDeadEnds(t *testing.T) {
	scorer := NewScorer(terrain.MustLoadCatalog())

	// A single open pocket: one open cell walled on all 8 sides.
	g := grid.New(5, 5, "wall")
	g.Set(2, 2, "empty")
	if ranked := scorer.Rank(context.Background(), g); len(ranked) != 0 {
		t.Errorf("Fully enclosed cell should be ineligible, got %d candidates", len(ranked))
	}

	// Opening one neighbor still leaves it short of two open neighbors.
	g.Set(2, 1, "empty")
	ranked := scorer.Rank(context.Background(), g)
	for _, p := range ranked {
		if p.Pos.X == 2 && p.Pos.Y == 2 {
			t.Error("Cell with one open neighbor should be ineligible")
		}
	}
}

func TestCoverMonotonicity(t *testing.T) {
	// A bespoke catalog with a screen terrain that blocks sight but not
	// movement isolates the cover term: flanking, mobility and base value
	// stay fixed while cover rises.
	catalog := terrain.NewCatalog([]terrain.Def{
		{ID: "wall", BlocksMovement: true, BlocksSight: true},
		{ID: "floor", MovementCost: 1},
		{ID: "screen", BlocksSight: true, MovementCost: 1},
	})
	scorer := NewScorer(catalog)

	base := grid.New(7, 7, "wall")
	for y := 1; y < 6; y++ {
		for x := 1; x < 6; x++ {
			base.Set(x, y, "floor")
		}
	}
	covered := base.Clone()
	covered.Set(2, 2, "screen") // diagonal neighbor of (3,3)

	find := func(g *grid.Grid) Position {
		for _, p := range scorer.Rank(context.Background(), g) {
			if p.Pos.X == 3 && p.Pos.Y == 3 {
				return p
			}
		}
		t.Fatal("Position (3,3) not ranked")
		return Position{}
	}

	before := find(base)
	after := find(covered)

	if after.Cover <= before.Cover {
		t.Errorf("Cover did not increase: %v -> %v", before.Cover, after.Cover)
	}
	if after.Flanking != before.Flanking || after.Mobility != before.Mobility {
		t.Fatalf("Screen terrain changed non-cover terms: %+v vs %+v", before, after)
	}
	if after.Score <= before.Score {
		t.Errorf("More cover should strictly increase the value: %v -> %v", before.Score, after.Score)
	}
}

func TestRankOrderDeterministic(t *testing.T) {
	scorer := NewScorer(terrain.MustLoadCatalog())
	g := openField(9, 9)
	g.Set(4, 4, "rubble")

	r1 := scorer.Rank(context.Background(), g)
	r2 := scorer.Rank(context.Background(), g)
	if len(r1) != len(r2) {
		t.Fatalf("Rank sizes differ: %d != %d", len(r1), len(r2))
	}
	for i := range r1 {
		if r1[i] != r2[i] {
			t.Fatalf("Rank order diverged at %d: %+v != %+v", i, r1[i], r2[i])
		}
	}

	// Descending by score, ties in row-major scan order.
	for i := 1; i < len(r1); i++ {
		if r1[i].Score > r1[i-1].Score {
			t.Fatalf("Rank not sorted at %d: %v after %v", i, r1[i].Score, r1[i-1].Score)
		}
		if r1[i].Score == r1[i-1].Score {
			a, b := r1[i-1].Pos, r1[i].Pos
			if b.Y < a.Y || (b.Y == a.Y && b.X < a.X) {
				t.Fatalf("Tie at %d broke scan order: %v before %v", i, a, b)
			}
		}
	}
}

func TestPartialCoverAndMobility(t *testing.T) {
	scorer := NewScorer(terrain.MustLoadCatalog())
	g := openField(7, 7)
	g.Set(3, 2, "rubble") // partial cover, cost 2, cardinal neighbor of (3,3)

	var target Position
	found := false
	for _, p := range scorer.Rank(context.Background(), g) {
		if p.Pos.X == 3 && p.Pos.Y == 3 {
			target, found = p, true
		}
	}
	if !found {
		t.Fatal("Position (3,3) not ranked")
	}

	if target.Cover != 0.5 {
		t.Errorf("Cover = %v, want 0.5 from one partial-cover neighbor", target.Cover)
	}
	// Three open-ground neighbors contribute 2 each, the rubble neighbor 1.
	if target.Mobility != 7 {
		t.Errorf("Mobility = %v, want 7", target.Mobility)
	}
}

func TestTopLimits(t *testing.T) {
	scorer := NewScorer(terrain.MustLoadCatalog())
	g := openField(9, 9)

	top := scorer.Top(context.Background(), g, 5)
	if len(top) != 5 {
		t.Errorf("Top(5) returned %d positions", len(top))
	}
	all := scorer.Rank(context.Background(), g)
	big := scorer.Top(context.Background(), g, len(all)+10)
	if len(big) != len(all) {
		t.Errorf("Top beyond candidate count should return all %d, got %d", len(all), len(big))
	}
}
