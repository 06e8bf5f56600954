package shooter

import (
	"github.com/deeean/go-vector/vector2"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Projectile dimensions and defaults.
const (
	ProjectileWidth        = 4.0
	ProjectileHeight       = 12.0
	DefaultProjectileSpeed = 0.3 // units per millisecond

	// DirectionUp is the only direction the craft fires in. y grows
	// downwards, so up is negative.
	DirectionUp = -1
)

// CollisionKind is the outcome of resolving one projectile for one tick.
type CollisionKind int

const (
	NotYet   CollisionKind = iota // still in flight
	EndOfMap                      // left the playfield through the top
	Hit                           // destroyed a target
)

// String returns a human-readable name for the collision kind.
func (k CollisionKind) String() string {
	switch k {
	case NotYet:
		return "NotYet"
	case EndOfMap:
		return "EndOfMap"
	case Hit:
		return "Hit"
	default:
		return "Unknown"
	}
}

// Projectile is a shot travelling in a straight vertical line.
// Size, direction and speed never change after creation.
type Projectile struct {
	pos       vector2.Vector2 // center
	direction int
	speed     float64
}

// NewProjectile creates an upward projectile centered at (x, y) moving at
// DefaultProjectileSpeed.
func NewProjectile(x, y float64) *Projectile {
	return newProjectile(x, y, DefaultProjectileSpeed)
}

func newProjectile(x, y, speed float64) *Projectile {
	return &Projectile{
		pos:       *vector2.New(x, y),
		direction: DirectionUp,
		speed:     speed,
	}
}

// X returns the horizontal center.
func (p *Projectile) X() float64 { return p.pos.X }

// Y returns the vertical center.
func (p *Projectile) Y() float64 { return p.pos.Y }

// Box returns the projectile's bounds.
func (p *Projectile) Box() core.Box {
	return core.Box{X: p.pos.X, Y: p.pos.Y, W: ProjectileWidth, H: ProjectileHeight}
}

// Advance moves the projectile by dt milliseconds of travel.
func (p *Projectile) Advance(dt float64) {
	step := vector2.New(0, float64(p.direction)).MulScalar(p.speed * dt)
	p.pos = *p.pos.Add(step)
}

// ResolveCollision decides the projectile's fate for this tick.
//
// Leaving the playfield wins over hitting anything. Otherwise targets are
// tested in order and the first overlapping live one is marked dead; at most
// one target dies per projectile per tick. Dead targets are only marked here,
// removing them is the caller's job.
func (p *Projectile) ResolveCollision(targets []*Target) CollisionKind {
	if p.pos.Y+ProjectileHeight < 0 {
		return EndOfMap
	}
	box := p.Box()
	for _, t := range targets {
		if !t.Alive() {
			continue
		}
		if box.Overlaps(t.Box()) {
			t.kill()
			return Hit
		}
	}
	return NotYet
}

// Render draws the projectile.
func (p *Projectile) Render(s Surface) {
	fillBox(s, p.Box())
}

// fillBox fills a center-based box on the surface.
func fillBox(s Surface, b core.Box) {
	s.FillRect(b.Left(), b.Top(), b.W, b.H)
}
