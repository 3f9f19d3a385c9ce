// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-spaceshooter/pkg/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Collision policies understood by the simulation
const (
	PolicyLog    = "log"
	PolicyStop   = "stop"
	PolicyIgnore = "ignore"
)

// Frontends that can drive the simulation
const (
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
	FrontendEngo     = "engo"
)

// GameConfig contains the configuration for one simulation run
type GameConfig struct {
	Ship       ShipConfig       `json:"ship" yaml:"ship"`
	Asteroid   AsteroidConfig   `json:"asteroid" yaml:"asteroid"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Display    DisplayConfig    `json:"display" yaml:"display"`
	Controls   ControlsConfig   `json:"controls" yaml:"controls"`
	Audio      AudioConfig      `json:"audio" yaml:"audio"`
	Trace      TraceConfig      `json:"trace" yaml:"trace"`
}

// ShipConfig contains the ship's starting position and acceleration constants
type ShipConfig struct {
	X                      float64 `json:"x" yaml:"x"`
	Y                      float64 `json:"y" yaml:"y"`
	RotationalAcceleration float64 `json:"rotationalAcceleration" yaml:"rotational_acceleration"`
	LinearAcceleration     float64 `json:"linearAcceleration" yaml:"linear_acceleration"`
}

// AsteroidConfig places the asteroid
type AsteroidConfig struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// SimulationConfig contains tick loop settings
type SimulationConfig struct {
	TickIntervalMS  int    `json:"tickIntervalMs" yaml:"tick_interval_ms"`
	MaxTicks        int    `json:"maxTicks" yaml:"max_ticks"`
	CollisionFrame  string `json:"collisionFrame" yaml:"collision_frame"`
	CollisionPolicy string `json:"collisionPolicy" yaml:"collision_policy"`
	CommandBuffer   int    `json:"commandBuffer" yaml:"command_buffer"`
}

// DisplayConfig contains the world size and frontend selection
type DisplayConfig struct {
	Width    int    `json:"width" yaml:"width"`
	Height   int    `json:"height" yaml:"height"`
	Frontend string `json:"frontend" yaml:"frontend"`
}

// ControlsConfig maps single characters to commands
type ControlsConfig struct {
	Accelerate  string `json:"accelerate" yaml:"accelerate"`
	RotateLeft  string `json:"rotateLeft" yaml:"rotate_left"`
	RotateRight string `json:"rotateRight" yaml:"rotate_right"`
	Quit        string `json:"quit" yaml:"quit"`
}

// AudioConfig contains the collision alarm settings
type AudioConfig struct {
	Enabled     bool    `json:"enabled" yaml:"enabled"`
	FrequencyHz float64 `json:"frequencyHz" yaml:"frequency_hz"`
	DurationMS  int     `json:"durationMs" yaml:"duration_ms"`
	SampleRate  int     `json:"sampleRate" yaml:"sample_rate"`
}

// TraceConfig selects where per-tick trace rows are written. An empty path
// disables tracing.
type TraceConfig struct {
	Path string `json:"path" yaml:"path"`
}

// TickInterval returns the configured tick period
func (c *GameConfig) TickInterval() time.Duration {
	return time.Duration(c.Simulation.TickIntervalMS) * time.Millisecond
}

// LoadConfig loads a configuration file on top of DefaultConfig, so fields
// missing from the file keep their defaults. Files ending in .yaml or .yml
// are parsed as YAML, everything else as JSON.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig writes config to path in the format implied by its extension
func SaveConfig(config *GameConfig, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// DefaultConfig returns the stock game: ship at (50, 50), asteroid of
// radius 50 at (250, 250), a 30ms tick and an 800x600 world.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Ship: ShipConfig{
			X:                      50,
			Y:                      50,
			RotationalAcceleration: 0.1,
			LinearAcceleration:     0.1,
		},
		Asteroid: AsteroidConfig{
			X:      250,
			Y:      250,
			Radius: entity.DefaultAsteroidRadius,
		},
		Simulation: SimulationConfig{
			TickIntervalMS:  30,
			MaxTicks:        0,
			CollisionFrame:  entity.FrameWorld.String(),
			CollisionPolicy: PolicyLog,
			CommandBuffer:   64,
		},
		Display: DisplayConfig{
			Width:    800,
			Height:   600,
			Frontend: FrontendTerminal,
		},
		Controls: ControlsConfig{
			Accelerate:  "w",
			RotateLeft:  "d",
			RotateRight: "a",
			Quit:        "q",
		},
		Audio: AudioConfig{
			Enabled:     false,
			FrequencyHz: 440,
			DurationMS:  150,
			SampleRate:  48000,
		},
	}
}

// Validate checks config for values the simulation cannot run with
func (c *GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Display.Width > 0 && c.Display.Height > 0,
		"display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	check(c.Simulation.TickIntervalMS > 0,
		"tick interval must be positive, got %dms", c.Simulation.TickIntervalMS)
	check(c.Simulation.MaxTicks >= 0,
		"max ticks must not be negative, got %d", c.Simulation.MaxTicks)
	check(c.Simulation.CommandBuffer > 0,
		"command buffer must be positive, got %d", c.Simulation.CommandBuffer)
	check(c.Asteroid.Radius > 0,
		"asteroid radius must be positive, got %v", c.Asteroid.Radius)

	switch c.Display.Frontend {
	case FrontendTerminal, FrontendHeadless, FrontendEngo:
	default:
		check(false, "unknown frontend %q", c.Display.Frontend)
	}

	if _, err := entity.ParseFrame(c.Simulation.CollisionFrame); err != nil {
		check(false, "%v", err)
	}
	switch c.Simulation.CollisionPolicy {
	case "", PolicyLog, PolicyStop, PolicyIgnore:
	default:
		check(false, "unknown collision policy %q", c.Simulation.CollisionPolicy)
	}

	seen := make(map[string]string)
	for name, key := range map[string]string{
		"accelerate":   c.Controls.Accelerate,
		"rotate_left":  c.Controls.RotateLeft,
		"rotate_right": c.Controls.RotateRight,
		"quit":         c.Controls.Quit,
	} {
		if utf8.RuneCountInString(key) != 1 {
			check(false, "control %s must be a single character, got %q", name, key)
			continue
		}
		if other, dup := seen[key]; dup {
			check(false, "controls %s and %s share key %q", other, name, key)
		}
		seen[key] = name
	}

	if c.Audio.Enabled {
		check(c.Audio.FrequencyHz > 0, "audio frequency must be positive, got %v", c.Audio.FrequencyHz)
		check(c.Audio.DurationMS > 0, "audio duration must be positive, got %dms", c.Audio.DurationMS)
		check(c.Audio.SampleRate > 0, "audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}

	return errors.Join(errs...)
}
