package terrain

import (
	"errors"

	"github.com/samdwyer/gridforge/internal/rng"
)

// Catalog holds loaded terrain definitions and resolves ids to properties.
type Catalog struct {
	defs map[string]Def
}

// Unknown is the definition returned for ids the catalog has never seen,
// including the empty id produced by out-of-bounds grid reads. It is
// deliberately conservative: an unknown terrain obstructs.
var Unknown = Def{
	ID:             "unknown",
	Name:           "Unknown",
	BlocksMovement: true,
	BlocksSight:    true,
}

// NewCatalog creates a catalog from loaded terrain definitions.
func NewCatalog(defs []Def) *Catalog {
	byID := make(map[string]Def, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	return &Catalog{defs: byID}
}

// LoadCatalog loads and creates a catalog from the embedded terrains.json.
func LoadCatalog() (*Catalog, error) {
	defs, err := LoadTerrains()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no terrains loaded from terrains.json")
	}
	return NewCatalog(defs), nil
}

// MustLoadCatalog loads a catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Get returns the definition for the given terrain id, falling back to
// Unknown for ids not in the catalog.
func (c *Catalog) Get(id string) Def {
	if d, ok := c.defs[id]; ok {
		return d
	}
	return Unknown
}

// Has reports whether the catalog holds a definition for the id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.defs[id]
	return ok
}

// Count returns the number of terrain definitions.
func (c *Catalog) Count() int {
	return len(c.defs)
}

// ThemeRegistry holds loaded theme definitions.
type ThemeRegistry struct {
	themes []ThemeDef
	byID   map[string]int
}

// NewThemeRegistry creates a registry from loaded theme definitions.
func NewThemeRegistry(themes []ThemeDef) *ThemeRegistry {
	byID := make(map[string]int, len(themes))
	for i, t := range themes {
		byID[t.ID] = i
	}
	return &ThemeRegistry{themes: themes, byID: byID}
}

// LoadThemeRegistry loads and creates a registry from the embedded themes.json.
func LoadThemeRegistry() (*ThemeRegistry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewThemeRegistry(themes), nil
}

// MustLoadThemeRegistry loads a registry, panicking on error.
func MustLoadThemeRegistry() *ThemeRegistry {
	registry, err := LoadThemeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the theme with the given id.
func (r *ThemeRegistry) Get(id string) (ThemeDef, bool) {
	i, ok := r.byID[id]
	if !ok {
		return ThemeDef{}, false
	}
	return r.themes[i], true
}

// IDs returns all theme ids in definition order.
func (r *ThemeRegistry) IDs() []string {
	ids := make([]string, len(r.themes))
	for i, t := range r.themes {
		ids[i] = t.ID
	}
	return ids
}

// Count returns the number of theme definitions.
func (r *ThemeRegistry) Count() int {
	return len(r.themes)
}

// PickFeature selects a feature terrain id using weighted probability from
// the stream. Features with higher weight are more likely to be selected.
// Themes without features fall back to the theme floor.
func (t ThemeDef) PickFeature(stream *rng.Stream) string {
	totalWeight := 0
	for _, f := range t.Features {
		totalWeight += f.Weight
	}
	if totalWeight <= 0 {
		return t.Floor
	}

	roll := stream.Intn(totalWeight)
	cumulative := 0
	for _, f := range t.Features {
		cumulative += f.Weight
		if roll < cumulative {
			return f.Terrain
		}
	}

	// Fallback (shouldn't happen)
	return t.Features[len(t.Features)-1].Terrain
}
