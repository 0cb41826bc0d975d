package layout

import (
	"github.com/samdwyer/gridforge/internal/grid"
	"github.com/samdwyer/gridforge/internal/rng"
	"github.com/samdwyer/gridforge/internal/terrain"
)

// generateComposite runs the partition layout to completion, then adds a
// second, lower-probability decoration pass over the result: room-and-
// corridor structure with organic noise on top.
func generateComposite(g *grid.Grid, stream *rng.Stream, theme terrain.ThemeDef, params Params) {
	b := newPartitionBuilder(g, stream, theme, params)
	b.run()
	b.sprinkle(theme.CompositeChance)
}
