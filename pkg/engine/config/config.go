// Package config loads the TOML configuration for darkdepths.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Limits  LimitsConfig  `toml:"limits"`
	Level   LevelConfig   `toml:"level"`
	Data    DataConfig    `toml:"data"`
	Logging LoggingConfig `toml:"logging"`
}

// LimitsConfig sizes the per-level arrays of a chunk
type LimitsConfig struct {
	LevelMonsterMax int `toml:"level_monster_max"` // monster slots per level, slot 0 reserved
	ObjectListSize  int `toml:"object_list_size"`  // initial object index length, slot 0 reserved
	ObjectListIncr  int `toml:"object_list_incr"`  // growth step of the object index
}

type LevelConfig struct {
	Height int `toml:"height"`
	Width  int `toml:"width"`
}

type DataConfig struct {
	TerrainPath string `toml:"terrain_path"` // empty = embedded table
	LocaleDir   string `toml:"locale_dir"`
	Language    string `toml:"language"`
	Domain      string `toml:"domain"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads the config file at path on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML contents on top of the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects limits the chunk allocator cannot honour
func (c *Config) Validate() error {
	if c.Limits.LevelMonsterMax < 2 {
		return fmt.Errorf("limits.level_monster_max must be at least 2, got %d", c.Limits.LevelMonsterMax)
	}
	if c.Limits.ObjectListSize < 2 {
		return fmt.Errorf("limits.object_list_size must be at least 2, got %d", c.Limits.ObjectListSize)
	}
	if c.Limits.ObjectListIncr < 1 {
		return fmt.Errorf("limits.object_list_incr must be positive, got %d", c.Limits.ObjectListIncr)
	}
	if c.Level.Height < 3 || c.Level.Width < 3 {
		return fmt.Errorf("level must be at least 3x3, got %dx%d", c.Level.Height, c.Level.Width)
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		Limits: LimitsConfig{
			LevelMonsterMax: 1024,
			ObjectListSize:  128,
			ObjectListIncr:  128,
		},
		Level: LevelConfig{
			Height: 66,
			Width:  198,
		},
		Data: DataConfig{
			LocaleDir: "locales",
			Language:  "en_GB",
			Domain:    "default",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
