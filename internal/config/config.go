package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/san-kum/gravbox/internal/control"
	"github.com/san-kum/gravbox/internal/interact"
	"github.com/san-kum/gravbox/internal/physics"
	"github.com/san-kum/gravbox/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth       = 1000
	DefaultHeight      = 700
	DefaultFPS         = 60
	DefaultDt          = 0.05
	DefaultPanelHeight = 100.0
	DefaultFontSize    = 20
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	Controls   ControlsConfig   `yaml:"controls"`
	Input      InputConfig      `yaml:"input"`
	Log        LogConfig        `yaml:"log"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	FPS       int    `yaml:"fps"`
	Font      string `yaml:"font"`
	FontSize  int    `yaml:"font_size"`
	ShowStats bool   `yaml:"show_stats"`
}

type SimulationConfig struct {
	Dt          float64 `yaml:"dt"`
	TrailLength int     `yaml:"trail_length"`
	LaunchScale float64 `yaml:"launch_scale"`
	Ordering    string  `yaml:"ordering"`
}

// SliderConfig positions a slider. Bottom is the distance from the bottom
// edge of the surface to the track.
type SliderConfig struct {
	X      float64 `yaml:"x"`
	Bottom float64 `yaml:"bottom"`
	Width  float64 `yaml:"width"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Value  float64 `yaml:"value"`
	Label  string  `yaml:"label"`
}

type ControlsConfig struct {
	PanelHeight float64      `yaml:"panel_height"`
	HitRadius   float64      `yaml:"hit_radius"`
	Size        SliderConfig `yaml:"size"`
	Mass        SliderConfig `yaml:"mass"`
	Gravity     SliderConfig `yaml:"gravity"`
}

type InputConfig struct {
	ResetKey string `yaml:"reset_key"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			Title:    "Gravity Sandbox",
			FPS:      DefaultFPS,
			FontSize: DefaultFontSize,
		},
		Simulation: SimulationConfig{
			Dt:          DefaultDt,
			TrailLength: physics.DefaultTrailLength,
			LaunchScale: interact.DefaultLaunchScale,
			Ordering:    sim.OrderSnapshot.String(),
		},
		Controls: ControlsConfig{
			PanelHeight: DefaultPanelHeight,
			HitRadius:   control.DefaultHitRadius,
			Size:        SliderConfig{X: 50, Bottom: 120, Width: 200, Min: 5, Max: 50, Value: 15, Label: "Size"},
			Mass:        SliderConfig{X: 50, Bottom: 80, Width: 200, Min: 5, Max: 2000, Value: 225, Label: "Mass"},
			Gravity:     SliderConfig{X: 350, Bottom: 80, Width: 200, Min: 1, Max: 300, Value: 100, Label: "Gravity"},
		},
		Input: InputConfig{ResetKey: string(interact.DefaultResetKey)},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads a yaml file over the defaults, so a partial file only
// overrides what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.Window.FPS))
	}
	if c.Simulation.Dt <= 0 {
		errs = append(errs, fmt.Errorf("dt must be positive, got %f", c.Simulation.Dt))
	}
	if c.Simulation.TrailLength < 1 {
		errs = append(errs, fmt.Errorf("trail_length must be at least 1, got %d", c.Simulation.TrailLength))
	}
	if _, err := sim.ParseOrdering(c.Simulation.Ordering); err != nil {
		errs = append(errs, err)
	}
	if c.Controls.PanelHeight < 0 || c.Controls.PanelHeight > float64(c.Window.Height) {
		errs = append(errs, fmt.Errorf("panel_height %v outside [0, %d]", c.Controls.PanelHeight, c.Window.Height))
	}
	sliders := []struct {
		name string
		cfg  SliderConfig
	}{
		{"size", c.Controls.Size},
		{"mass", c.Controls.Mass},
		{"gravity", c.Controls.Gravity},
	}
	for _, s := range sliders {
		if err := s.cfg.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s slider: %w", s.name, err))
		}
	}
	if c.Controls.Mass.Min <= 0 {
		errs = append(errs, fmt.Errorf("mass slider: min must be positive, got %v", c.Controls.Mass.Min))
	}
	if c.Controls.Size.Min < 1 {
		errs = append(errs, fmt.Errorf("size slider: min must be at least 1, got %v", c.Controls.Size.Min))
	}
	if utf8.RuneCountInString(c.Input.ResetKey) != 1 {
		errs = append(errs, fmt.Errorf("reset_key must be a single character, got %q", c.Input.ResetKey))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func (s SliderConfig) validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("width must be positive, got %v", s.Width)
	}
	if s.Min >= s.Max {
		return fmt.Errorf("min %v must be below max %v", s.Min, s.Max)
	}
	if s.Value < s.Min || s.Value > s.Max {
		return fmt.Errorf("value %v outside [%v, %v]", s.Value, s.Min, s.Max)
	}
	return nil
}

func (s SliderConfig) spec(height float64) control.Spec {
	return control.Spec{X: s.X, Y: height - s.Bottom, Width: s.Width, Min: s.Min, Max: s.Max, Value: s.Value, Label: s.Label}
}

// Layout places the three sliders on a surface of the configured height.
func (c *Config) Layout() control.Layout {
	h := float64(c.Window.Height)
	return control.Layout{
		Size:      c.Controls.Size.spec(h),
		Mass:      c.Controls.Mass.spec(h),
		Gravity:   c.Controls.Gravity.spec(h),
		HitRadius: c.Controls.HitRadius,
	}
}

func (c *Config) Interact() interact.Config {
	key, _ := utf8.DecodeRuneInString(c.Input.ResetKey)
	return interact.Config{
		PanelTop:    float64(c.Window.Height) - c.Controls.PanelHeight,
		LaunchScale: c.Simulation.LaunchScale,
		ResetKey:    key,
		TrailLength: c.Simulation.TrailLength,
	}
}

func (c *Config) Ordering() sim.Ordering {
	o, _ := sim.ParseOrdering(c.Simulation.Ordering)
	return o
}
