package terrain

// Def defines a terrain kind loaded from JSON. The grid itself stores only
// terrain ids; all semantic properties live here.
type Def struct {
	ID             string  `json:"id"`             // Unique identifier (e.g., "wall")
	Name           string  `json:"name"`           // Display name (e.g., "Wall")
	BlocksMovement bool    `json:"blocksMovement"` // Cannot be entered or crossed
	BlocksSight    bool    `json:"blocksSight"`    // Breaks line of sight (full cover)
	PartialCover   bool    `json:"partialCover"`   // Grants half cover to adjacent cells
	Hazard         bool    `json:"hazard"`         // Dangerous to stand on (pit, lava, water)
	MovementCost   float64 `json:"movementCost"`   // Cost to enter; 1 is open ground
	TacticalValue  float64 `json:"tacticalValue"`  // Base placement desirability
	Elevation      float64 `json:"elevation"`      // Relative height advantage
}

// TerrainsFile represents the structure of terrains.json.
type TerrainsFile struct {
	Terrains []Def `json:"terrains"`
}

// Feature is one entry of a theme's decorative terrain set.
type Feature struct {
	Terrain string `json:"terrain"` // Terrain id to place
	Weight  int    `json:"weight"`  // Relative pick frequency (higher = more common)
}

// ThemeDef defines a map theme loaded from JSON: the obstructing and open
// terrain ids plus the weighted feature set used by the decoration passes.
type ThemeDef struct {
	ID                    string    `json:"id"`                    // Unique identifier (e.g., "dungeon")
	Name                  string    `json:"name"`                  // Display name (e.g., "Dungeon")
	Wall                  string    `json:"wall"`                  // Obstructing terrain id
	Floor                 string    `json:"floor"`                 // Open terrain id
	Features              []Feature `json:"features"`              // Weighted decorative/hazard terrains
	FeatureChance         float64   `json:"featureChance"`         // Per-cell chance in room/open areas
	CorridorFeatureChance float64   `json:"corridorFeatureChance"` // Per-cell chance in corridor-like cells
	CompositeChance       float64   `json:"compositeChance"`       // Per-cell chance of the composite second pass
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []ThemeDef `json:"themes"`
}

// LoadTerrains loads terrain definitions from the embedded terrains.json.
func LoadTerrains() ([]Def, error) {
	file, err := Load[TerrainsFile]("terrains.json")
	if err != nil {
		return nil, err
	}
	return file.Terrains, nil
}

// LoadThemes loads theme definitions from the embedded themes.json.
func LoadThemes() ([]ThemeDef, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}
