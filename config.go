package boxgrid

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Grid     GridConfig     `yaml:"grid"`
	Camera   CameraConfig   `yaml:"camera"`
	Lights   LightConfig    `yaml:"lights"`
	Colors   ColorConfig    `yaml:"colors"`
	Motion   MotionConfig   `yaml:"motion"`
	Geometry GeometryConfig `yaml:"geometry"`
	Log      LogConfig      `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type GridConfig struct {
	Columns  int     `yaml:"columns"`
	Span     float64 `yaml:"span"`   // world width shared by all columns
	Margin   float64 `yaml:"margin"` // pitch as a multiple of box size
	Rotation string  `yaml:"rotation"`
	Seed     int64   `yaml:"seed"`
}

type CameraConfig struct {
	Fovy        float64    `yaml:"fovy"`
	Near        float64    `yaml:"near"`
	Far         float64    `yaml:"far"`
	Position    [3]float64 `yaml:"position"`
	Target      [3]float64 `yaml:"target"`
	MinDistance float64    `yaml:"min_distance"`
	MaxDistance float64    `yaml:"max_distance"`
}

type LightConfig struct {
	Ambient     float64    `yaml:"ambient"`
	Directional float64    `yaml:"directional"`
	Direction   [3]float64 `yaml:"direction"`
}

type ColorConfig struct {
	Clear    uint32 `yaml:"clear"`
	Default  uint32 `yaml:"default"`
	Neighbor uint32 `yaml:"neighbor"`
	Active   uint32 `yaml:"active"`
	Outline  bool   `yaml:"outline"`
}

type MotionConfig struct {
	AmbientSpin float64 `yaml:"ambient_spin"` // radians per second
	ActiveSpin  float64 `yaml:"active_spin"`  // extra radians per second for the hit box
}

type LogConfig struct {
	Level  string `yaml:"level"`  // any logrus level name
	Format string `yaml:"format"` // text or json
}

type GeometryConfig struct {
	File    string `yaml:"file"` // DXF; empty means a cube
	Reverse bool   `yaml:"reverse"`
}

// DefaultConfig is 30 columns across 12 units,
// spinning 0.0125 rad per frame at 60 TPS.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "boxgrid",
			TPS:    60,
		},
		Grid: GridConfig{
			Columns:  30,
			Span:     12,
			Margin:   1.25,
			Rotation: RotationRandom,
			Seed:     1,
		},
		Camera: CameraConfig{
			Fovy:        60,
			Near:        0.1,
			Far:         100,
			Position:    [3]float64{0, -2, 5},
			Target:      [3]float64{0, 0, 0},
			MinDistance: 1,
			MaxDistance: 50,
		},
		Lights: LightConfig{
			Ambient:     0.2,
			Directional: 1.0,
			Direction:   [3]float64{1, 1, 1},
		},
		Colors: ColorConfig{
			Clear:    0x666666,
			Default:  0x29ABE2,
			Neighbor: 0x00FFFF,
			Active:   0xFFFFFF,
		},
		Motion: MotionConfig{
			AmbientSpin: 0.75,
			ActiveSpin:  7.5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig. Unknown keys
// are rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	log.WithField("path", path).Info("Loaded config")
	return cfg, nil
}

func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Grid.Columns <= 0:
		return fmt.Errorf("%w: grid.columns must be positive, got %d", ErrInvalidConfig, c.Grid.Columns)
	case c.Grid.Span <= 0:
		return fmt.Errorf("%w: grid.span must be positive, got %g", ErrInvalidConfig, c.Grid.Span)
	case c.Grid.Margin <= 0:
		return fmt.Errorf("%w: grid.margin must be positive, got %g", ErrInvalidConfig, c.Grid.Margin)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: window.tps must be positive, got %d", ErrInvalidConfig, c.Window.TPS)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera needs 0 < near < far, got %g, %g", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180:
		return fmt.Errorf("%w: camera.fovy must be in (0, 180), got %g", ErrInvalidConfig, c.Camera.Fovy)
	case c.Camera.Position == c.Camera.Target:
		return fmt.Errorf("%w: camera.position equals camera.target", ErrInvalidConfig)
	}

	switch c.Grid.Rotation {
	case RotationRandom, RotationPerlin, RotationNone, "":
	default:
		return fmt.Errorf("%w: unknown grid.rotation %q", ErrInvalidConfig, c.Grid.Rotation)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Aspect is the window's width over height.
func (c Config) Aspect() float64 {
	return float64(c.Window.Width) / float64(c.Window.Height)
}

// Apply configures the standard logrus logger.
func (l LogConfig) Apply() {
	if l.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if level, err := log.ParseLevel(l.Level); err == nil {
		log.SetLevel(level)
	}
}

func (c ColorConfig) Palette() Palette {
	return Palette{
		Default:  ColorFromHex(c.Default),
		Neighbor: ColorFromHex(c.Neighbor),
		Active:   ColorFromHex(c.Active),
	}
}

func (l LightConfig) Lighting() Lighting {
	dir := mgl64.Vec3(l.Direction)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Lighting{
		Ambient:     l.Ambient,
		Directional: l.Directional,
		Direction:   dir,
	}
}
