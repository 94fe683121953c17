// Package config loads the host options: window, program and soundtrack.
// The field itself has no options; its parameters are constants in package field.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	css "github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/lavafield/internal/field"
)

const (
	WindowWidth  = 1024
	WindowHeight = 576

	// smallest window the host accepts from a config file
	MinWindowSize = 16
)

var ErrInvalid = errors.New("invalid config")

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Render     RenderConfig     `yaml:"render"`
	Soundtrack SoundtrackConfig `yaml:"soundtrack"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	Resizable  bool   `yaml:"resizable"`
	Vsync      bool   `yaml:"vsync"`
}

type RenderConfig struct {
	Aurora     field.AuroraMode `yaml:"aurora"`
	ClearColor string           `yaml:"clear_color"`
	ShaderPath string           `yaml:"shader_path"`
}

type SoundtrackConfig struct {
	Path string `yaml:"path"`
	Loop bool   `yaml:"loop"`
}

// Load reads the embedded defaults and then, if path is not empty, the
// file at path on top of them. Keys missing from the file keep their default.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width < MinWindowSize || c.Window.Height < MinWindowSize {
		return fmt.Errorf("%w: window size %dx%d is below %d", ErrInvalid,
			c.Window.Width, c.Window.Height, MinWindowSize)
	}
	if _, err := c.ClearColor(); err != nil {
		return err
	}
	switch c.Render.Aurora {
	case field.AuroraOff, field.AuroraAdditive:
	default:
		return fmt.Errorf("%w: aurora mode %v", ErrInvalid, c.Render.Aurora)
	}
	return nil
}

// ClearColor parses render.clear_color as a CSS colour. Empty means black.
func (c *Config) ClearColor() (color.Color, error) {
	if c.Render.ClearColor == "" {
		return color.Black, nil
	}

	clr, err := css.Parse(c.Render.ClearColor)
	if err != nil {
		return nil, fmt.Errorf("%w: clear_color: %w", ErrInvalid, err)
	}

	return color.NRGBA{
		R: uint8(255 * clr.R),
		G: uint8(255 * clr.G),
		B: uint8(255 * clr.B),
		A: uint8(255 * clr.A),
	}, nil
}
