package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lucidstyle/shade/internal/theme"
)

type themeFile struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Anchor     string `yaml:"anchor,omitempty"`
}

// ReadThemeFile loads a theme seed pair from a yaml document with name,
// background and optional anchor keys.
func ReadThemeFile(path string) (theme.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("failed to read theme file: %w", err)
	}

	var parsed themeFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return theme.Theme{}, fmt.Errorf("failed to parse theme file: %w", err)
	}
	if parsed.Name == "" {
		return theme.Theme{}, fmt.Errorf("theme file %s: missing name", path)
	}
	if parsed.Background == "" {
		return theme.Theme{}, fmt.Errorf("theme file %s: missing background", path)
	}

	return theme.Theme{
		Name:       parsed.Name,
		Background: parsed.Background,
		Anchor:     parsed.Anchor,
	}, nil
}

// WriteThemeFile renders a theme seed pair back to yaml.
func WriteThemeFile(path string, t theme.Theme) error {
	data, err := yaml.Marshal(themeFile{
		Name:       t.Name,
		Background: t.Background,
		Anchor:     t.Anchor,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	return nil
}
