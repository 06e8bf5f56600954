package shooter

import (
	"github.com/deeean/go-vector/vector2"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Craft dimensions and defaults.
const (
	CraftWidth        = 40.0
	CraftHeight       = 40.0
	DefaultCraftSpeed = 0.2 // units per millisecond
)

// Craft is the player's ship. It slides horizontally along the bottom of the
// playfield and never leaves it.
type Craft struct {
	pos             vector2.Vector2 // center
	direction       int             // -1 left, 0 idle, +1 right
	speed           float64
	fieldWidth      float64
	projectileSpeed float64
}

// NewCraft creates an idle craft resting on the bottom edge of the playfield
// described by cfg.
func NewCraft(cfg config.ShooterConfig) *Craft {
	c := &Craft{
		pos:             *vector2.New(cfg.Craft.StartX, cfg.Playfield.Height-CraftHeight/2),
		speed:           cfg.Craft.Speed,
		fieldWidth:      cfg.Playfield.Width,
		projectileSpeed: cfg.Projectile.Speed,
	}
	c.pos.X = c.clampX(c.pos.X)
	return c
}

// X returns the horizontal center.
func (c *Craft) X() float64 { return c.pos.X }

// Y returns the vertical center.
func (c *Craft) Y() float64 { return c.pos.Y }

// Direction returns the current movement intent.
func (c *Craft) Direction() int { return c.direction }

// SetDirection sets the movement intent. Values outside [-1, 1] are reduced
// to their sign.
func (c *Craft) SetDirection(d int) {
	switch {
	case d < 0:
		c.direction = -1
	case d > 0:
		c.direction = 1
	default:
		c.direction = 0
	}
}

// Box returns the craft's bounds.
func (c *Craft) Box() core.Box {
	return core.Box{X: c.pos.X, Y: c.pos.Y, W: CraftWidth, H: CraftHeight}
}

// Advance moves the craft by dt milliseconds of travel, keeping its body
// inside the playfield.
func (c *Craft) Advance(dt float64) {
	candidate := c.pos.X + float64(c.direction)*c.speed*dt
	c.pos.X = c.clampX(candidate)
}

func (c *Craft) clampX(x float64) float64 {
	half := CraftWidth / 2
	return core.ClampF(x, half, c.fieldWidth-half)
}

// Fire spawns a projectile at the craft's nose. Rate limiting is up to the
// caller.
func (c *Craft) Fire() *Projectile {
	return newProjectile(c.pos.X, c.pos.Y-CraftHeight/2, c.projectileSpeed)
}

// Render draws the craft.
func (c *Craft) Render(s Surface) {
	fillBox(s, c.Box())
}
