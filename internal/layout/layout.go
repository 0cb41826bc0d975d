// Package layout implements the grid construction algorithms. Each algorithm
// is a deterministic function of (width, height, seed, theme, parameters):
// all randomness comes from the seeded stream, drawn in a fixed order.
package layout

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridforge/internal/grid"
	"github.com/samdwyer/gridforge/internal/rng"
	"github.com/samdwyer/gridforge/internal/telemetry"
	"github.com/samdwyer/gridforge/internal/terrain"
)

// Algorithm selects one of the construction strategies. It is a closed set:
// adding a strategy means adding a constant and a Generate case.
type Algorithm int

const (
	// Partition - room-and-corridor layout via recursive subdivision
	Partition Algorithm = iota
	// Automaton - organic cave growth via neighbor-count rules
	Automaton
	// Walk - corridor carving via a randomly stepping cursor
	Walk
	// Template - fixed skeleton with per-seed feature variation
	Template
	// Composite - partition layout with a second decorative pass
	Composite
)

// String returns the algorithm's configuration name.
func (a Algorithm) String() string {
	switch a {
	case Partition:
		return "partition"
	case Automaton:
		return "automaton"
	case Walk:
		return "walk"
	case Template:
		return "template"
	case Composite:
		return "composite"
	default:
		return "unknown"
	}
}

// Algorithms lists every supported algorithm in declaration order.
var Algorithms = []Algorithm{Partition, Automaton, Walk, Template, Composite}

// ParseAlgorithm resolves a configuration name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", name)
}

// Spec is a fully-resolved generation request. Producing one from external
// configuration (and validating it) is the config package's job.
type Spec struct {
	Width     int
	Height    int
	Seed      int64
	Algorithm Algorithm
	Theme     terrain.ThemeDef
	Params    Params
}

// Generate builds a grid from the spec. The same spec always yields the same
// grid, cell for cell.
func Generate(ctx context.Context, spec Spec) (*grid.Grid, error) {
	tracer := telemetry.Tracer("layout")
	ctx, span := tracer.Start(ctx, "layout.generate")
	defer span.End()

	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", spec.Width, spec.Height)
	}

	g := grid.New(spec.Width, spec.Height, spec.Theme.Wall)
	g.Seed = spec.Seed
	g.Theme = spec.Theme.ID
	stream := rng.New(spec.Seed)

	switch spec.Algorithm {
	case Partition:
		generatePartition(g, stream, spec.Theme, spec.Params)
	case Automaton:
		generateAutomaton(g, stream, spec.Theme, spec.Params)
	case Walk:
		generateWalk(g, stream, spec.Theme, spec.Params)
	case Template:
		generateTemplate(g, stream, spec.Theme, spec.Params)
	case Composite:
		generateComposite(g, stream, spec.Theme, spec.Params)
	default:
		return nil, fmt.Errorf("unknown algorithm %d", spec.Algorithm)
	}

	span.SetAttributes(
		attribute.String("layout.algorithm", spec.Algorithm.String()),
		attribute.String("layout.theme", spec.Theme.ID),
		attribute.Int64("layout.seed", spec.Seed),
		attribute.Int("layout.width", spec.Width),
		attribute.Int("layout.height", spec.Height),
	)

	return g, nil
}
