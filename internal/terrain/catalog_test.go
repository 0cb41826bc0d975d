package terrain

import (
	"testing"

	"github.com/samdwyer/gridforge/internal/rng"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	// Core terrains every theme relies on.
	for _, id := range []string{"wall", "empty", "rubble", "pit", "water", "lava"} {
		if !catalog.Has(id) {
			t.Errorf("Expected terrain %q not found", id)
		}
	}

	wall := catalog.Get("wall")
	if !wall.BlocksMovement || !wall.BlocksSight {
		t.Error("Wall should block movement and sight")
	}
	empty := catalog.Get("empty")
	if empty.BlocksMovement || empty.MovementCost != 1 {
		t.Errorf("Open ground should be passable at cost 1, got %+v", empty)
	}
	for _, id := range []string{"pit", "water", "lava"} {
		if !catalog.Get(id).Hazard {
			t.Errorf("Terrain %q should be a hazard", id)
		}
	}
}

func TestUnknownTerrainObstructs(t *testing.T) {
	catalog := MustLoadCatalog()

	def := catalog.Get("never-defined")
	if !def.BlocksMovement || !def.BlocksSight {
		t.Error("Unknown terrain should obstruct movement and sight")
	}

	// The empty id from out-of-bounds reads resolves the same way.
	if !catalog.Get("").BlocksMovement {
		t.Error("Empty terrain id should obstruct")
	}
}

func TestLoadThemeRegistry(t *testing.T) {
	themes, err := LoadThemeRegistry()
	if err != nil {
		t.Fatalf("Failed to load themes: %v", err)
	}

	catalog := MustLoadCatalog()
	for _, id := range []string{"dungeon", "cave", "crypt", "forest", "volcanic"} {
		theme, ok := themes.Get(id)
		if !ok {
			t.Errorf("Expected theme %q not found", id)
			continue
		}
		if !catalog.Has(theme.Wall) || !catalog.Has(theme.Floor) {
			t.Errorf("Theme %q references unknown wall/floor terrain", id)
		}
		if !catalog.Get(theme.Wall).BlocksMovement {
			t.Errorf("Theme %q wall terrain %q does not obstruct", id, theme.Wall)
		}
		for _, f := range theme.Features {
			if !catalog.Has(f.Terrain) {
				t.Errorf("Theme %q feature %q not in terrain catalog", id, f.Terrain)
			}
			if f.Weight <= 0 {
				t.Errorf("Theme %q feature %q has non-positive weight", id, f.Terrain)
			}
		}
	}

	if _, ok := themes.Get("moonbase"); ok {
		t.Error("Unknown theme id should not resolve")
	}
}

func TestPickFeatureDeterministic(t *testing.T) {
	themes := MustLoadThemeRegistry()
	theme, _ := themes.Get("dungeon")

	s1 := rng.New(12345)
	s2 := rng.New(12345)
	for i := 0; i < 50; i++ {
		p1 := theme.PickFeature(s1)
		p2 := theme.PickFeature(s2)
		if p1 != p2 {
			t.Fatalf("Pick %d diverged: %q != %q", i, p1, p2)
		}
		found := false
		for _, f := range theme.Features {
			if f.Terrain == p1 {
				found = true
			}
		}
		if !found {
			t.Fatalf("Pick %d returned %q, not in feature set", i, p1)
		}
	}
}
