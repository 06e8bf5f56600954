package shooter

import (
	"github.com/deeean/go-vector/vector2"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// TargetSize is the width and height of every target.
const TargetSize = 20.0

// Target is a stationary enemy. It dies on the first projectile hit.
type Target struct {
	pos   vector2.Vector2 // center
	alive bool
}

// NewTarget creates a live target centered at (x, y).
func NewTarget(x, y float64) *Target {
	return &Target{pos: *vector2.New(x, y), alive: true}
}

// Alive reports whether the target has not been hit yet.
func (t *Target) Alive() bool { return t.alive }

func (t *Target) kill() { t.alive = false }

// Box returns the target's bounds.
func (t *Target) Box() core.Box {
	return core.Box{X: t.pos.X, Y: t.pos.Y, W: TargetSize, H: TargetSize}
}

// Render draws the target. The scene only renders live targets.
func (t *Target) Render(s Surface) {
	fillBox(s, t.Box())
}

// InitialTargets builds the level's targets from a fixed layout.
func InitialTargets(layout []config.Point) []*Target {
	targets := make([]*Target, 0, len(layout))
	for _, p := range layout {
		targets = append(targets, NewTarget(p.X, p.Y))
	}
	return targets
}
