package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"maze/internal/raycast"
)

type Config struct {
	Screen  ScreenConfig  `toml:"screen"`
	Camera  CameraConfig  `toml:"camera"`
	Player  PlayerConfig  `toml:"player"`
	Map     MapConfig     `toml:"map"`
	Render  RenderConfig  `toml:"render"`
	Logging LoggingConfig `toml:"logging"`
}

type ScreenConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Scale      int    `toml:"scale"` // window size multiplier
	Fullscreen bool   `toml:"fullscreen"`
	TPS        int    `toml:"tps"`
}

type CameraConfig struct {
	FOVDegrees float64 `toml:"fov_deg"`
	Projection string  `toml:"projection"` // "perspective" or "simple"
}

type PlayerConfig struct {
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Heading   float64 `toml:"heading"` // degrees
	MoveSpeed float64 `toml:"move_speed"`
	TurnSpeed float64 `toml:"turn_speed"`
}

type MapConfig struct {
	Source   string `toml:"source"` // "builtin" or "generated"
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Seed     int64  `toml:"seed"` // 0 picks a time-based seed
	Segments int    `toml:"segments"`
}

type RenderConfig struct {
	Ceiling  uint32 `toml:"ceiling"` // 0xAARRGGBB
	Floor    uint32 `toml:"floor"`
	MaxSteps int    `toml:"max_steps"` // 0 derives from map size
	Minimap  bool   `toml:"minimap"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

const (
	SourceBuiltin   = "builtin"
	SourceGenerated = "generated"
)

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Screen: ScreenConfig{
			Title:  "Maze",
			Width:  320,
			Height: 200,
			Scale:  3,
			TPS:    60,
		},
		Camera: CameraConfig{
			FOVDegrees: 60,
			Projection: "perspective",
		},
		Player: PlayerConfig{
			X:         1.5,
			Y:         1.5,
			Heading:   0,
			MoveSpeed: 0.15,
			TurnSpeed: 2.0,
		},
		Map: MapConfig{
			Source:   SourceBuiltin,
			Width:    24,
			Height:   24,
			Segments: 14,
		},
		Render: RenderConfig{
			Ceiling: 0xFFCCCCCC,
			Floor:   0xFF555555,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var err error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.Scale < 1 {
		err = multierr.Append(err, fmt.Errorf("screen scale must be at least 1, got %d", c.Screen.Scale))
	}
	if c.Screen.TPS <= 0 {
		err = multierr.Append(err, fmt.Errorf("tps must be positive, got %d", c.Screen.TPS))
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		err = multierr.Append(err, fmt.Errorf("fov_deg must be in (0, 180), got %g", c.Camera.FOVDegrees))
	}
	if _, perr := raycast.ParseProjection(c.Camera.Projection); perr != nil {
		err = multierr.Append(err, perr)
	}
	if c.Player.MoveSpeed <= 0 || c.Player.TurnSpeed <= 0 {
		err = multierr.Append(err, fmt.Errorf("player speeds must be positive, got move=%g turn=%g", c.Player.MoveSpeed, c.Player.TurnSpeed))
	}
	switch c.Map.Source {
	case SourceBuiltin:
	case SourceGenerated:
		if c.Map.Width < 3 || c.Map.Height < 3 {
			err = multierr.Append(err, fmt.Errorf("generated map must be at least 3x3, got %dx%d", c.Map.Width, c.Map.Height))
		}
		if c.Map.Segments < 0 {
			err = multierr.Append(err, fmt.Errorf("segments must not be negative, got %d", c.Map.Segments))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown map source %q", c.Map.Source))
	}
	if c.Render.MaxSteps < 0 {
		err = multierr.Append(err, fmt.Errorf("max_steps must not be negative, got %d", c.Render.MaxSteps))
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		err = multierr.Append(err, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}
	return err
}
