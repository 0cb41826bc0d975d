package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPreset loads a generation request from a YAML file.
// Search order: the path as given, then ./presets/<path>.yaml.
func LoadPreset(path string) (Generation, error) {
	var gen Generation

	data, err := os.ReadFile(path)
	if err != nil {
		fallback := filepath.Join("presets", path+".yaml")
		data, err = os.ReadFile(fallback)
		if err != nil {
			return gen, fmt.Errorf("failed to read preset %s: %w", path, err)
		}
	}

	if err := yaml.Unmarshal(data, &gen); err != nil {
		return gen, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	return gen, nil
}
