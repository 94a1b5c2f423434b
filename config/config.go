// Package config holds the startup parameters, their defaults, the YAML
// file overlay and the consistency checks run before any frame is drawn.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/lixenwraith/sphere/clock"
	"github.com/lixenwraith/sphere/scene"
	"github.com/lixenwraith/sphere/shade"
)

// Config represents the complete set of startup parameters
type Config struct {
	FPS    int          `yaml:"fps"`
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Radius int          `yaml:"radius"`
	Axis   string       `yaml:"axis"`   // x, y, z
	Offset int          `yaml:"offset"` // may be negative
	Period float64      `yaml:"period"` // seconds per revolution
	Glyphs string       `yaml:"glyphs"` // lightest first
	Camera CameraConfig `yaml:"camera"`
}

// CameraConfig is the fixed view origin
type CameraConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// ConfigurationError reports a rejected or inconsistent parameter
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "configuration: " + e.Reason
	}
	return fmt.Sprintf("configuration: %s %s", e.Field, e.Reason)
}

// Default returns the built-in parameters
func Default() Config {
	return Config{
		FPS:    15,
		Width:  20,
		Height: 20,
		Radius: 9,
		Axis:   "y",
		Offset: 20,
		Period: 2.0,
		Glyphs: shade.DefaultGlyphs,
	}
}

// Load overlays the YAML file at path on the defaults
// Unknown keys are rejected; the result is not validated
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, &ConfigurationError{Field: "config", Reason: fmt.Sprintf("cannot be read: %v", err)}
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, &ConfigurationError{Field: "config", Reason: fmt.Sprintf("cannot be parsed: %v", err)}
	}
	return cfg, nil
}

// Save writes cfg as YAML to path
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: serialize: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks every parameter and the fit of the sphere in the viewport
func (c Config) Validate() error {
	positive := []struct {
		field string
		value int
	}{
		{"fps", c.FPS},
		{"term-width", c.Width},
		{"term-height", c.Height},
		{"circle-radius", c.Radius},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return &ConfigurationError{Field: p.field, Reason: "must be a valid integer greater than 0"}
		}
	}

	if c.FPS > clock.MaxFPS {
		return &ConfigurationError{Field: "fps", Reason: fmt.Sprintf("must be at most %d", clock.MaxFPS)}
	}

	if !(c.Period > 0) {
		return &ConfigurationError{Field: "period", Reason: "must be a valid real number greater than 0"}
	}

	if _, err := ParseAxis(c.Axis); err != nil {
		return err
	}

	if _, err := c.LuminanceMap(); err != nil {
		return err
	}

	side := 2*c.Radius + 1
	if m := min(c.Width, c.Height); m < side {
		return &ConfigurationError{
			Field: "circle-radius",
			Reason: fmt.Sprintf("is too big for the terminal: make it at least %dx%d, or decrease the radius to at most %d",
				side, side, MaxRadius(c.Width, c.Height)),
		}
	}
	return nil
}

// MaxRadius returns the largest radius whose diameter fits a width x height viewport
func MaxRadius(width, height int) int {
	return (min(width, height) - 1) / 2
}

// ParseAxis maps the axis parameter to a scene axis
func ParseAxis(s string) (scene.Axis, error) {
	axis, err := scene.ParseAxis(s)
	if err != nil {
		return 0, &ConfigurationError{Field: "light-axis", Reason: "must only be one of these values: x, y, z"}
	}
	return axis, nil
}

// Scene derives the sphere, light orbit and camera from a validated config
func (c Config) Scene() (scene.Sphere, scene.Orbit, scene.Camera) {
	sphere := scene.NewSphere(c.Width, c.Height, c.Radius)
	axis, _ := scene.ParseAxis(c.Axis)
	orbit := scene.NewOrbit(sphere, axis, c.Offset, c.Period)
	camera := scene.Camera{X: c.Camera.X, Y: c.Camera.Y, Z: c.Camera.Z}
	return sphere, orbit, camera
}

// LuminanceMap returns the glyph ramp, falling back to the default map when
// none is configured
func (c Config) LuminanceMap() (shade.LuminanceMap, error) {
	if c.Glyphs == "" {
		return shade.DefaultMap(), nil
	}
	m, err := shade.ParseMap(c.Glyphs)
	if err != nil {
		return nil, &ConfigurationError{Field: "glyphs", Reason: err.Error()}
	}
	return m, nil
}
