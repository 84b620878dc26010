package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in defaults as a config source.
const SourceEmbedded = "embedded"

// LocalConfigPath is the working-directory config consulted after the user config.
var LocalConfigPath = filepath.Join("configs", "slides.yaml")

// LoadSlides loads the slides configuration; see ResolveSlides for the search order.
func LoadSlides(customPath string) (SlidesConfig, error) {
	cfg, _, err := ResolveSlides(customPath)
	return cfg, err
}

// ResolveSlides loads the slides configuration and reports where it came from.
//
// A non-empty customPath must be readable and valid; no other file is tried.
// Otherwise the user config (~/.slides/configs/slides.yaml) and then
// LocalConfigPath are tried, skipping files that are missing or invalid, and
// the embedded defaults apply last. Keys absent from a file keep their
// default values.
func ResolveSlides(customPath string) (SlidesConfig, string, error) {
	if customPath != "" {
		cfg, err := readSlides(customPath)
		if err != nil {
			return DefaultSlidesConfig(), "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{UserConfigPath(), LocalConfigPath} {
		if path == "" {
			continue
		}
		if cfg, err := readSlides(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := DefaultSlidesConfig()
	if err := yaml.Unmarshal(defaultSlidesYAML, &cfg); err != nil {
		return DefaultSlidesConfig(), SourceEmbedded, nil
	}
	return normalize(cfg), SourceEmbedded, nil
}

func readSlides(path string) (SlidesConfig, error) {
	cfg := DefaultSlidesConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return normalize(cfg), nil
}

// normalize replaces values a board cannot be built with.
func normalize(cfg SlidesConfig) SlidesConfig {
	def := DefaultSlidesConfig()
	if cfg.Board.TileSize <= 0 {
		cfg.Board.TileSize = def.Board.TileSize
	}
	if cfg.Board.Spacing < 0 {
		cfg.Board.Spacing = def.Board.Spacing
	}
	if cfg.Scatter.Moves < 0 {
		cfg.Scatter.Moves = def.Scatter.Moves
	}
	return cfg
}

// UserConfigPath returns ~/.slides/configs/slides.yaml, or "" without a home directory.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slides", "configs", "slides.yaml")
}

// WriteDefault writes the embedded defaults to path, creating parent directories.
// An existing file is left untouched unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}
