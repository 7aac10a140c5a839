// Package config handles demo configuration loading and management.
package config

import (
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/logger"
)

// Config holds all demo settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// TerrainConfig holds heightfield generation parameters.
type TerrainConfig struct {
	Size      int     `yaml:"size"`
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
	Seed      int64   `yaml:"seed"`
	Alpha     float64 `yaml:"alpha"`
	Beta      float64 `yaml:"beta"`
	Strip     string  `yaml:"strip"` // "reference" or "bridged"
}

// CameraConfig holds the initial fly camera state.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	FOV         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	InvertY     bool       `yaml:"invert_y"`
}

// RenderConfig holds shading settings.
type RenderConfig struct {
	Texture       string     `yaml:"texture"`
	LightColor    [3]float32 `yaml:"light_color"`
	LightPosition [3]float32 `yaml:"light_position"`
	ClearColor    [4]float32 `yaml:"clear_color"`
	Wireframe     bool       `yaml:"wireframe"`
	ShowLight     bool       `yaml:"show_light"`
	ScreenshotDir string     `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the reference scene: a 500x500 grid seen from above its
// origin corner, lit by a white light over the middle.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Procedural Generation",
			Width:  1024,
			Height: 768,
			VSync:  true,
		},
		Terrain: TerrainConfig{
			Size:      terrain.DefaultSize,
			Frequency: terrain.DefaultFrequency,
			Amplitude: terrain.DefaultAmplitude,
			Seed:      terrain.DefaultSeed,
			Alpha:     terrain.DefaultPerlinAlpha,
			Beta:      terrain.DefaultPerlinBeta,
			Strip:     terrain.StripReference.String(),
		},
		Camera: CameraConfig{
			Position:    [3]float32{2.5, 8, 2.5},
			Yaw:         0,
			Pitch:       -89,
			Speed:       102.5,
			Sensitivity: 0.1,
			FOV:         45,
			Near:        0.1,
			Far:         1000,
			InvertY:     true,
		},
		Render: RenderConfig{
			Texture:       "textures/low_def_grass.jpg",
			LightColor:    [3]float32{1, 1, 1},
			LightPosition: [3]float32{250, 100, 250},
			ClearColor:    [4]float32{0.2, 0.3, 0.6, 0.5},
			ShowLight:     true,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// TerrainOptions converts the terrain section into generator options.
func (c *Config) TerrainOptions() (terrain.Options, error) {
	layout, ok := terrain.ParseStripLayout(c.Terrain.Strip)
	if !ok {
		return terrain.Options{}, fmt.Errorf("terrain.strip: unknown layout %q", c.Terrain.Strip)
	}
	return terrain.Options{
		Size:      c.Terrain.Size,
		Frequency: c.Terrain.Frequency,
		Amplitude: c.Terrain.Amplitude,
		Seed:      c.Terrain.Seed,
		Alpha:     c.Terrain.Alpha,
		Beta:      c.Terrain.Beta,
		Layout:    layout,
	}, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0, "window.width must be positive, got %d", c.Window.Width)
	check(c.Window.Height > 0, "window.height must be positive, got %d", c.Window.Height)

	check(c.Terrain.Size >= 2, "terrain.size must be at least 2, got %d", c.Terrain.Size)
	check(c.Terrain.Frequency > 0 && !math.IsInf(c.Terrain.Frequency, 0),
		"terrain.frequency must be positive and finite, got %v", c.Terrain.Frequency)
	check(!math.IsNaN(c.Terrain.Amplitude) && !math.IsInf(c.Terrain.Amplitude, 0),
		"terrain.amplitude must be finite, got %v", c.Terrain.Amplitude)
	if _, ok := terrain.ParseStripLayout(c.Terrain.Strip); !ok {
		check(false, "terrain.strip must be reference or bridged, got %q", c.Terrain.Strip)
	}

	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera.fov must be in (0, 180), got %v", c.Camera.FOV)
	check(c.Camera.Near > 0, "camera.near must be positive, got %v", c.Camera.Near)
	check(c.Camera.Far > c.Camera.Near, "camera.far %v must exceed camera.near %v", c.Camera.Far, c.Camera.Near)
	check(c.Camera.Speed >= 0, "camera.speed must not be negative, got %v", c.Camera.Speed)

	if _, lerr := logger.ParseLevel(c.Logging.Level); lerr != nil {
		check(false, "logging.level: %v", lerr)
	}
	return err
}
