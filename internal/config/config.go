// Package config provides YAML-based configuration loading for the shooter.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ShooterConfig contains all tunable settings of the shooter.
type ShooterConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Craft      CraftConfig      `yaml:"craft"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Fire       FireConfig       `yaml:"fire"`
	Render     RenderConfig     `yaml:"render"`
	Targets    []Point          `yaml:"targets"`
	Terminal   TerminalConfig   `yaml:"terminal"`
}

// PlayfieldConfig defines the simulation area. Origin is the top-left corner.
type PlayfieldConfig struct {
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Background core.Color `yaml:"background"`
}

// CraftConfig defines the player craft.
type CraftConfig struct {
	StartX float64 `yaml:"start_x"`
	Speed  float64 `yaml:"speed"` // units per millisecond
}

// ProjectileConfig defines projectiles fired by the craft.
type ProjectileConfig struct {
	Speed float64 `yaml:"speed"` // units per millisecond
}

// FireConfig defines the fire rate limit.
type FireConfig struct {
	CooldownMs float64 `yaml:"cooldown_ms"`
}

// RenderConfig defines the single fill colour used for every entity.
type RenderConfig struct {
	Fill core.Color `yaml:"fill"`
}

// Point is a position in playfield units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TerminalConfig tunes the key-release emulation of terminal hosts.
type TerminalConfig struct {
	InitialReleaseMs int `yaml:"initial_release_ms"`
	RepeatReleaseMs  int `yaml:"repeat_release_ms"`
}

// Validate reports the first unusable setting.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %gx%g",
			ErrInvalidConfig, c.Playfield.Width, c.Playfield.Height)
	case c.Craft.Speed <= 0:
		return fmt.Errorf("%w: craft speed must be positive, got %g", ErrInvalidConfig, c.Craft.Speed)
	case c.Projectile.Speed <= 0:
		return fmt.Errorf("%w: projectile speed must be positive, got %g", ErrInvalidConfig, c.Projectile.Speed)
	case c.Fire.CooldownMs < 0:
		return fmt.Errorf("%w: fire cooldown cannot be negative, got %g", ErrInvalidConfig, c.Fire.CooldownMs)
	case c.Terminal.InitialReleaseMs < 0 || c.Terminal.RepeatReleaseMs < 0:
		return fmt.Errorf("%w: terminal release windows cannot be negative", ErrInvalidConfig)
	}
	return nil
}
