package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/san-kum/trajsim/internal/ballistic"
	"github.com/san-kum/trajsim/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS    = 30
	DefaultTheme  = "ember"
	DefaultWidth  = 60
	DefaultHeight = 20
)

type Config struct {
	Launch  LaunchConfig  `yaml:"launch"`
	Display DisplayConfig `yaml:"display"`
}

type LaunchConfig struct {
	Velocity float64 `yaml:"velocity"`
	Angle    float64 `yaml:"angle"`
	Gravity  float64 `yaml:"gravity"`
	Samples  int     `yaml:"samples"`
}

// DisplayConfig sizes the animation canvas in terminal cells.
type DisplayConfig struct {
	FPS    int    `yaml:"fps"`
	Theme  string `yaml:"theme"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Launch: LaunchConfig{
			Velocity: ballistic.DefaultVelocity,
			Angle:    ballistic.DefaultAngle,
			Gravity:  ballistic.DefaultGravity,
			Samples:  ballistic.DefaultSamples,
		},
		Display: DisplayConfig{
			FPS:    DefaultFPS,
			Theme:  DefaultTheme,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// Load reads a yaml file over the defaults, so omitted keys keep default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in a yaml file onto cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (l LaunchConfig) Input() ballistic.Input {
	return ballistic.Input{
		Velocity: l.Velocity,
		AngleDeg: l.Angle,
		Gravity:  l.Gravity,
		Samples:  l.Samples,
	}
}

func (c *Config) Input() ballistic.Input {
	return c.Launch.Input()
}

func (c *Config) Validate() error {
	if err := c.Input().Validate(); err != nil {
		return err
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Display.FPS)
	}
	if names := viz.ThemeNames(); !slices.Contains(names, c.Display.Theme) {
		return fmt.Errorf("unknown theme: %q (available: %v)", c.Display.Theme, names)
	}
	if c.Display.Width < 10 || c.Display.Height < 5 {
		return fmt.Errorf("display too small: %dx%d (min 10x5)", c.Display.Width, c.Display.Height)
	}
	return nil
}
