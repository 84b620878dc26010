// Package config provides YAML-based game configuration loading and
// difficulty presets for the slides puzzle.
package config

// SlidesConfig contains all configuration for the slides puzzle.
type SlidesConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Scatter ScatterConfig `yaml:"scatter"`
}

// BoardConfig defines where the board sits and how large its tiles are.
type BoardConfig struct {
	OriginX  int `yaml:"origin_x"`
	OriginY  int `yaml:"origin_y"`
	TileSize int `yaml:"tile_size"`
	Spacing  int `yaml:"spacing"`
}

// ScatterConfig defines how thoroughly a new board is shuffled.
type ScatterConfig struct {
	Moves int `yaml:"moves"` // Counted random moves after the initial step off the header
}
