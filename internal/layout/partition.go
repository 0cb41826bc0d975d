package layout

import (
	"github.com/samdwyer/gridforge/internal/grid"
	"github.com/samdwyer/gridforge/internal/rng"
	"github.com/samdwyer/gridforge/internal/terrain"
)

// catalog resolves terrain properties for the feature passes. The embedded
// catalog must load or the library is unusable, so a failure panics at init.
var catalog = terrain.MustLoadCatalog()

// partitionBuilder carries the state of one partition-layout run: the grid
// under construction, the rooms carved so far, and the set of cells that must
// stay traversable (room centers and corridor paths).
type partitionBuilder struct {
	g         *grid.Grid
	stream    *rng.Stream
	theme     terrain.ThemeDef
	params    Params
	rooms     []grid.Room
	protected map[grid.Position]bool
}

func newPartitionBuilder(g *grid.Grid, stream *rng.Stream, theme terrain.ThemeDef, params Params) *partitionBuilder {
	return &partitionBuilder{
		g:         g,
		stream:    stream,
		theme:     theme,
		params:    params,
		protected: make(map[grid.Position]bool),
	}
}

// generatePartition builds a room-and-corridor layout via recursive
// subdivision and returns the rooms in generation order.
func generatePartition(g *grid.Grid, stream *rng.Stream, theme terrain.ThemeDef, params Params) []grid.Room {
	b := newPartitionBuilder(g, stream, theme, params)
	b.run()
	return b.rooms
}

func (b *partitionBuilder) run() {
	// Keep the outermost grid edge obstructing regardless of room placement.
	root := grid.Room{X: 1, Y: 1, Width: b.g.Width - 2, Height: b.g.Height - 2}
	b.partition(root, b.params.MaxRooms)
	b.connectRooms()
	b.placeFeatures()
}

// partition recursively subdivides a region. A region too small to split on
// either axis, or a spent room budget, terminates in a single leaf room.
func (b *partitionBuilder) partition(region grid.Room, budget int) {
	minSize := b.params.MinRoomSize
	canSplitWide := region.Width >= 2*minSize
	canSplitTall := region.Height >= 2*minSize

	if budget <= 1 || (!canSplitWide && !canSplitTall) {
		b.carveLeafRoom(region)
		return
	}

	// 50/50 axis pick, falling back to the axis that still has room.
	splitTall := b.stream.Chance(0.5)
	if splitTall && !canSplitTall {
		splitTall = false
	} else if !splitTall && !canSplitWide {
		splitTall = true
	}

	if splitTall {
		offset := b.stream.Range(minSize, region.Height-minSize)
		b.partition(grid.Room{X: region.X, Y: region.Y, Width: region.Width, Height: offset}, budget/2)
		b.partition(grid.Room{X: region.X, Y: region.Y + offset, Width: region.Width, Height: region.Height - offset}, budget-budget/2)
	} else {
		offset := b.stream.Range(minSize, region.Width-minSize)
		b.partition(grid.Room{X: region.X, Y: region.Y, Width: offset, Height: region.Height}, budget/2)
		b.partition(grid.Room{X: region.X + offset, Y: region.Y, Width: region.Width - offset, Height: region.Height}, budget-budget/2)
	}
}

// carveLeafRoom sizes a room randomly within the region, clamped to the
// minimum room size and the region bounds, and stamps it into the grid.
// Regions smaller than the minimum are not an error; the clamp absorbs them.
func (b *partitionBuilder) carveLeafRoom(region grid.Room) {
	w := b.stream.Range(b.params.MinRoomSize, region.Width)
	if w > region.Width {
		w = region.Width
	}
	h := b.stream.Range(b.params.MinRoomSize, region.Height)
	if h > region.Height {
		h = region.Height
	}

	x := region.X + b.stream.Intn(region.Width-w+1)
	y := region.Y + b.stream.Intn(region.Height-h+1)

	room := grid.Room{X: x, Y: y, Width: w, Height: h}
	b.stampRoom(room)
	b.rooms = append(b.rooms, room)
}

// stampRoom writes a room into the grid: obstructing border, open interior.
func (b *partitionBuilder) stampRoom(room grid.Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if !b.g.InBounds(x, y) {
				continue
			}
			if room.ContainsInterior(x, y) {
				b.g.Set(x, y, b.theme.Floor)
			} else {
				b.g.Set(x, y, b.theme.Wall)
			}
		}
	}
}

// connectRooms joins rooms pairwise in generation order with L-shaped
// corridors. The resulting connectivity graph is a simple path; that is the
// intended shape, not an accident.
func (b *partitionBuilder) connectRooms() {
	for i := 1; i < len(b.rooms); i++ {
		b.carveCorridor(b.rooms[i-1], b.rooms[i])
	}
	for _, room := range b.rooms {
		c := room.Center()
		b.protected[c] = true
	}
}

// carveCorridor runs horizontally at the source room's center row, then
// vertically at the destination room's center column. Coincident centers
// degrade to a no-op.
func (b *partitionBuilder) carveCorridor(from, to grid.Room) {
	c1 := from.Center()
	c2 := to.Center()

	x1, x2 := c1.X, c2.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		for off := 0; off < b.params.CorridorWidth; off++ {
			b.carveOpen(x, c1.Y+off)
		}
	}

	y1, y2 := c1.Y, c2.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for off := 0; off < b.params.CorridorWidth; off++ {
			b.carveOpen(c2.X+off, y)
		}
	}
}

// carveOpen converts an obstructing cell on the corridor path to open
// terrain. Cells that are already open are crossed, never overwritten, and
// every crossed cell is protected from blocking features later. Carving is
// clamped inside the grid's permanent wall border.
func (b *partitionBuilder) carveOpen(x, y int) {
	if x < 1 || x > b.g.Width-2 || y < 1 || y > b.g.Height-2 {
		return
	}
	b.protected[grid.Position{X: x, Y: y}] = true
	if b.g.Get(x, y) != b.theme.Floor {
		b.g.Set(x, y, b.theme.Floor)
	}
}

// placeFeatures runs the decoration pass: open room-interior cells roll
// against the theme's feature chance, corridor-like open cells against the
// lower corridor chance. Cells on the protected path never take a feature
// that would block movement or hazard the path.
func (b *partitionBuilder) placeFeatures() {
	for y := 1; y < b.g.Height-1; y++ {
		for x := 1; x < b.g.Width-1; x++ {
			if b.g.Get(x, y) != b.theme.Floor {
				continue
			}

			var chance float64
			switch {
			case b.insideRoom(x, y):
				chance = b.theme.FeatureChance
			case b.corridorLike(x, y):
				chance = b.theme.CorridorFeatureChance
			default:
				continue
			}

			if !b.stream.Chance(chance) {
				continue
			}
			b.placeFeature(x, y)
		}
	}
}

// placeFeature draws a themed feature for the cell, dropping picks that
// would make a protected cell impassable.
func (b *partitionBuilder) placeFeature(x, y int) {
	id := b.theme.PickFeature(b.stream)
	if b.protected[grid.Position{X: x, Y: y}] {
		def := catalog.Get(id)
		if def.BlocksMovement || def.Hazard {
			return
		}
	}
	b.g.Set(x, y, id)
}

// insideRoom reports whether the cell sits in any room's interior.
func (b *partitionBuilder) insideRoom(x, y int) bool {
	for _, room := range b.rooms {
		if room.ContainsInterior(x, y) {
			return true
		}
	}
	return false
}

// corridorLike detects corridor cells by neighbor majority: an open cell
// hemmed in by six or more obstructing neighbors is treated as corridor.
func (b *partitionBuilder) corridorLike(x, y int) bool {
	blocked := 0
	for _, d := range grid.Neighborhood {
		if catalog.Get(b.g.Get(x+d.X, y+d.Y)).BlocksMovement {
			blocked++
		}
	}
	return blocked >= 6
}

// sprinkle is the composite layout's second decoration pass: a uniform
// low-probability roll over every open cell, with the same protection rules
// as the main pass.
func (b *partitionBuilder) sprinkle(chance float64) {
	for y := 0; y < b.g.Height; y++ {
		for x := 0; x < b.g.Width; x++ {
			if b.g.Get(x, y) != b.theme.Floor {
				continue
			}
			if !b.stream.Chance(chance) {
				continue
			}
			b.placeFeature(x, y)
		}
	}
}
