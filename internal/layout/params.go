package layout

import "fmt"

// Params holds the tunable knobs shared by the construction algorithms.
// Zero values are never used directly; resolve a Params through FromKnobs or
// start from DefaultParams.
type Params struct {
	// Partition layout
	MinRoomSize   int // Minimum room edge length, border included
	MaxRooms      int // Room budget for the recursive subdivision
	CorridorWidth int // Thickness of connecting corridors

	// Automaton layout
	InitialFill float64 // Probability a cell starts open
	Iterations  int     // Synchronous update passes
	BirthLimit  int     // Blocked cell opens when open neighbors exceed this
	DeathLimit  int     // Open cell closes when open neighbors fall below this

	// Walk layout
	Steps        int     // Cursor step count
	BranchChance float64 // Per-step probability of spawning a side walk
}

// DefaultParams returns the documented defaults for every knob.
func DefaultParams() Params {
	return Params{
		MinRoomSize:   4,
		MaxRooms:      8,
		CorridorWidth: 1,
		InitialFill:   0.45,
		Iterations:    4,
		BirthLimit:    4,
		DeathLimit:    3,
		Steps:         2000,
		BranchChance:  0.1,
	}
}

// FromKnobs resolves a named knob map against the defaults. Unknown knob
// names are rejected so configuration typos fail fast instead of silently
// falling back to a default.
func FromKnobs(knobs map[string]float64) (Params, error) {
	p := DefaultParams()
	for name, value := range knobs {
		switch name {
		case "minRoomSize":
			p.MinRoomSize = int(value)
		case "maxRooms":
			p.MaxRooms = int(value)
		case "corridorWidth":
			p.CorridorWidth = int(value)
		case "initialFill":
			p.InitialFill = value
		case "iterations":
			p.Iterations = int(value)
		case "birthLimit":
			p.BirthLimit = int(value)
		case "deathLimit":
			p.DeathLimit = int(value)
		case "steps":
			p.Steps = int(value)
		case "branchChance":
			p.BranchChance = value
		default:
			return p, fmt.Errorf("unknown parameter %q", name)
		}
	}
	if p.MinRoomSize < 3 {
		return p, fmt.Errorf("minRoomSize %d too small to hold a room interior", p.MinRoomSize)
	}
	if p.MaxRooms < 1 {
		return p, fmt.Errorf("maxRooms must be at least 1, got %d", p.MaxRooms)
	}
	if p.CorridorWidth < 1 {
		return p, fmt.Errorf("corridorWidth must be at least 1, got %d", p.CorridorWidth)
	}
	return p, nil
}
