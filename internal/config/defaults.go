package config

import (
	_ "embed"
)

//go:embed defaults/slides.yaml
var defaultSlidesYAML []byte

// DefaultSlidesConfig returns the default slides configuration.
func DefaultSlidesConfig() SlidesConfig {
	return SlidesConfig{
		Board: BoardConfig{
			OriginX:  200,
			OriginY:  150,
			TileSize: 100,
			Spacing:  10,
		},
		Scatter: ScatterConfig{
			Moves: 1000,
		},
	}
}

// DefaultYAML returns the embedded default config shared by every board size.
func DefaultYAML() []byte {
	return defaultSlidesYAML
}
