package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration. It matches the
// embedded defaults/shooter.yaml and is used when that fails to parse.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Playfield: PlayfieldConfig{
			Width:      400,
			Height:     400,
			Background: core.ColorBlack,
		},
		Craft: CraftConfig{
			StartX: 200,
			Speed:  0.2,
		},
		Projectile: ProjectileConfig{
			Speed: 0.3,
		},
		Fire: FireConfig{
			CooldownMs: 300,
		},
		Render: RenderConfig{
			Fill: core.ColorWhite,
		},
		Targets: []Point{
			{X: 140, Y: 60}, {X: 180, Y: 60}, {X: 220, Y: 60}, {X: 260, Y: 60},
			{X: 160, Y: 140}, {X: 200, Y: 140}, {X: 240, Y: 140},
		},
		Terminal: TerminalConfig{
			InitialReleaseMs: 500,
			RepeatReleaseMs:  120,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShooterYAML
}
