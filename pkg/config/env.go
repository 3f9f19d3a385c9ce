// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv
const (
	EnvTickInterval    = "SHOOTER_TICK_INTERVAL_MS"
	EnvCollisionFrame  = "SHOOTER_COLLISION_FRAME"
	EnvCollisionPolicy = "SHOOTER_COLLISION_POLICY"
	EnvMaxTicks        = "SHOOTER_MAX_TICKS"
	EnvAudio           = "SHOOTER_AUDIO"
	EnvTracePath       = "SHOOTER_TRACE_PATH"
	EnvWidth           = "SHOOTER_WIDTH"
	EnvHeight          = "SHOOTER_HEIGHT"
	EnvFrontend        = "SHOOTER_FRONTEND"
)

// ApplyEnv overrides fields of config from SHOOTER_* environment variables.
// Unset variables leave the field alone.
func ApplyEnv(config *GameConfig) error {
	ints := []struct {
		env string
		dst *int
	}{
		{EnvTickInterval, &config.Simulation.TickIntervalMS},
		{EnvMaxTicks, &config.Simulation.MaxTicks},
		{EnvWidth, &config.Display.Width},
		{EnvHeight, &config.Display.Height},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.env)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, v.env, raw)
		}
		*v.dst = n
	}

	strs := []struct {
		env string
		dst *string
	}{
		{EnvCollisionFrame, &config.Simulation.CollisionFrame},
		{EnvCollisionPolicy, &config.Simulation.CollisionPolicy},
		{EnvTracePath, &config.Trace.Path},
		{EnvFrontend, &config.Display.Frontend},
	}
	for _, v := range strs {
		if raw, ok := os.LookupEnv(v.env); ok {
			*v.dst = raw
		}
	}

	if raw, ok := os.LookupEnv(EnvAudio); ok {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvAudio, raw)
		}
		config.Audio.Enabled = enabled
	}

	return nil
}
