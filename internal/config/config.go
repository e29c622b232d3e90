// Package config handles sandbox configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/voxelcity/internal/camera"
	"github.com/Faultbox/voxelcity/internal/gun"
	"github.com/Faultbox/voxelcity/internal/terrain"
	"github.com/Faultbox/voxelcity/internal/voxel"
	"github.com/Faultbox/voxelcity/pkg/math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all sandbox settings.
type Config struct {
	World   voxel.Size     `yaml:"world"`
	Terrain terrain.Params `yaml:"terrain"`
	Gun     gun.Config     `yaml:"gun"`
	Camera  CameraConfig   `yaml:"camera"`
	Output  OutputConfig   `yaml:"output"`
	Logging LoggingConfig  `yaml:"logging"`
}

// CameraConfig holds the initial viewpoints.
type CameraConfig struct {
	Eye         math.Vec3 `yaml:"eye"`    // orbit eye
	Target      math.Vec3 `yaml:"target"` // orbit center
	Player      math.Vec3 `yaml:"player"` // first-person eye
	PlayerSpeed float32   `yaml:"player_speed"`
}

// OutputConfig holds headless output settings.
type OutputConfig struct {
	Map     bool `yaml:"map"`     // print a top-down map after generating
	Metrics bool `yaml:"metrics"` // print collected metrics on exit
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		World:   voxel.DefaultSize,
		Terrain: terrain.DefaultParams(),
		Gun:     gun.DefaultConfig(),
		Camera: CameraConfig{
			Eye:         camera.DefaultEye,
			Target:      camera.DefaultTarget,
			Player:      math.Vec3{X: 16, Y: 18, Z: 16},
			PlayerSpeed: 10,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values the sandbox cannot run with.
func (c *Config) Validate() error {
	if err := c.World.Validate(); err != nil {
		return fmt.Errorf("world: %w", err)
	}
	if c.Gun.Cooldown < 0 {
		return fmt.Errorf("%w: gun cooldown %v is negative", ErrInvalid, c.Gun.Cooldown)
	}
	if c.Gun.MaxDistance <= 0 {
		return fmt.Errorf("%w: gun max_distance %v must be positive", ErrInvalid, c.Gun.MaxDistance)
	}
	if c.Camera.PlayerSpeed < 0 {
		return fmt.Errorf("%w: camera player_speed %v is negative", ErrInvalid, c.Camera.PlayerSpeed)
	}
	return nil
}
