// Package config loads editor settings from a YAML file.
//
// Example file:
//
//	sprite:
//	  width: 32
//	  height: 32
//	history_limit: 100
//	color: "#ff0000"
//	palette: ["#000000", "#ffffff"]
//	clipboard:
//	  backend: sqlite
//	  path: ~/.local/share/pickle/clipboard.db
//	log_level: debug
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/davidisaaclee/pickle"
)

// Clipboard backends.
const (
	BackendMemory = "memory"
	BackendSystem = "system"
	BackendSQLite = "sqlite"
)

// Config holds all editor configuration.
type Config struct {
	Sprite       SpriteConfig    `yaml:"sprite"`
	HistoryLimit int             `yaml:"history_limit"`
	Color        string          `yaml:"color"`
	Palette      []string        `yaml:"palette"`
	Clipboard    ClipboardConfig `yaml:"clipboard"`
	LogLevel     string          `yaml:"log_level"`
}

// SpriteConfig sets the size of new documents.
type SpriteConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ClipboardConfig selects where copied frames are kept.
type ClipboardConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.defaults()
	return c
}

func (c *Config) defaults() {
	if c.Sprite.Width <= 0 {
		c.Sprite.Width = pickle.DefaultSpriteSize
	}
	if c.Sprite.Height <= 0 {
		c.Sprite.Height = pickle.DefaultSpriteSize
	}
	if c.HistoryLimit < 0 {
		c.HistoryLimit = 0
	}
	if c.Color == "" {
		c.Color = pickle.Red.String()
	}
	if len(c.Palette) == 0 {
		for _, p := range pickle.Palette {
			c.Palette = append(c.Palette, p.String())
		}
	}
	if c.Clipboard.Backend == "" {
		c.Clipboard.Backend = BackendMemory
	}
	if c.Clipboard.Backend == BackendSQLite && c.Clipboard.Path == "" {
		c.Clipboard.Path = "pickle-clipboard.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Load reads a YAML config file and fills unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data and fills unset fields with defaults.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c.defaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	switch c.Clipboard.Backend {
	case BackendMemory, BackendSystem, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown clipboard backend %q", c.Clipboard.Backend)
	}
	if _, err := c.ActiveColor(); err != nil {
		return fmt.Errorf("config: color: %w", err)
	}
	if _, err := c.PaletteColors(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// ActiveColor returns the parsed initial drawing color.
func (c *Config) ActiveColor() (pickle.Color, error) {
	return pickle.ParseHex(c.Color)
}

// PaletteColors returns the parsed palette.
func (c *Config) PaletteColors() ([]pickle.Color, error) {
	out := make([]pickle.Color, 0, len(c.Palette))
	for i, h := range c.Palette {
		col, err := pickle.ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("config: palette[%d]: %w", i, err)
		}
		out = append(out, col)
	}
	return out, nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return l, nil
}
