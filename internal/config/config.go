// Package config provides the generation configuration surface: validation
// of externally-supplied requests and YAML preset loading.
package config

import (
	"errors"
	"fmt"

	"github.com/samdwyer/gridforge/internal/layout"
	"github.com/samdwyer/gridforge/internal/terrain"
)

// ErrInvalidConfig is wrapped by every validation error. Validation runs
// before any stream draw, so a bad request can never consume entropy.
var ErrInvalidConfig = errors.New("invalid generation config")

// Generation describes one map generation request as produced by an external
// orchestrator or a preset file.
type Generation struct {
	Width      int                `yaml:"width"`
	Height     int                `yaml:"height"`
	Seed       int64              `yaml:"seed"`
	Theme      string             `yaml:"theme"`
	Algorithm  string             `yaml:"algorithm"`
	Parameters map[string]float64 `yaml:"parameters"`
}

// Validate checks the request against the theme registry without resolving
// it. A nil error means Resolve will succeed.
func (g Generation) Validate(themes *terrain.ThemeRegistry) error {
	_, err := g.Resolve(themes)
	return err
}

// Resolve validates the request and produces a fully-resolved layout spec:
// parsed algorithm, looked-up theme, and parameters merged over defaults.
func (g Generation) Resolve(themes *terrain.ThemeRegistry) (layout.Spec, error) {
	var spec layout.Spec

	if g.Width <= 0 || g.Height <= 0 {
		return spec, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, g.Width, g.Height)
	}
	if g.Seed < 0 {
		return spec, fmt.Errorf("%w: seed %d must be non-negative", ErrInvalidConfig, g.Seed)
	}

	algorithm, err := layout.ParseAlgorithm(g.Algorithm)
	if err != nil {
		return spec, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	theme, ok := themes.Get(g.Theme)
	if !ok {
		return spec, fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, g.Theme)
	}

	params, err := layout.FromKnobs(g.Parameters)
	if err != nil {
		return spec, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return layout.Spec{
		Width:     g.Width,
		Height:    g.Height,
		Seed:      g.Seed,
		Algorithm: algorithm,
		Theme:     theme,
		Params:    params,
	}, nil
}
