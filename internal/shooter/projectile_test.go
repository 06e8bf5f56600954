package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileAdvance(t *testing.T) {
	p := NewProjectile(200, 360)

	p.Advance(100)

	assert.InDelta(t, 330.0, p.Y(), 1e-9)
	assert.Equal(t, 200.0, p.X(), "projectiles only move vertically")
}

func TestProjectileYOnlyDecreases(t *testing.T) {
	p := NewProjectile(100, 300)
	prev := p.Y()
	for _, dt := range []float64{0, 1, 16.6, 33, 250} {
		p.Advance(dt)
		assert.LessOrEqual(t, p.Y(), prev)
		prev = p.Y()
	}
}

func TestProjectileEventuallyLeavesMap(t *testing.T) {
	p := NewProjectile(200, 360)

	ticks := 0
	for p.ResolveCollision(nil) == NotYet {
		p.Advance(16)
		ticks++
		require.Less(t, ticks, 1000, "projectile never left the playfield")
	}

	assert.Less(t, p.Y()+ProjectileHeight, 0.0)
	assert.Equal(t, EndOfMap, p.ResolveCollision(nil))
}

func TestProjectileEndOfMapPrecedesHit(t *testing.T) {
	// A target placed where the projectile is, both above the playfield.
	target := NewTarget(50, -20)
	p := NewProjectile(50, -20)

	assert.Equal(t, EndOfMap, p.ResolveCollision([]*Target{target}))
	assert.True(t, target.Alive(), "EndOfMap must not touch targets")
}

func TestProjectileHitsCenteredTarget(t *testing.T) {
	targets := []*Target{NewTarget(200, 60)}
	p := NewProjectile(200, 60)

	assert.Equal(t, Hit, p.ResolveCollision(targets))
	assert.False(t, targets[0].Alive())
}

func TestProjectileKillsAtMostOneTarget(t *testing.T) {
	// Two overlapping targets, both intersecting the projectile.
	first := NewTarget(100, 100)
	second := NewTarget(105, 100)
	p := NewProjectile(102, 100)

	assert.Equal(t, Hit, p.ResolveCollision([]*Target{first, second}))
	assert.False(t, first.Alive(), "targets are tested in collection order")
	assert.True(t, second.Alive(), "only one target dies per projectile per tick")
}

func TestProjectileSkipsDeadTargets(t *testing.T) {
	dead := NewTarget(100, 100)
	dead.kill()
	p := NewProjectile(100, 100)

	assert.Equal(t, NotYet, p.ResolveCollision([]*Target{dead}))
}

func TestProjectileCollisionBoundaries(t *testing.T) {
	// Combined half extents: x = 2 + 10 = 12, y = 6 + 10 = 16.
	tests := []struct {
		name     string
		px, py   float64
		expected CollisionKind
	}{
		{"center", 100, 100, Hit},
		{"just inside x", 111.9, 100, Hit},
		{"touching x", 112, 100, NotYet},
		{"just inside y", 100, 115.9, Hit},
		{"touching y", 100, 116, NotYet},
		{"far away", 300, 300, NotYet},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			target := NewTarget(100, 100)
			p := NewProjectile(tc.px, tc.py)
			assert.Equal(t, tc.expected, p.ResolveCollision([]*Target{target}))
			assert.Equal(t, tc.expected != Hit, target.Alive())
		})
	}
}

func TestProjectileRender(t *testing.T) {
	s := &recordingSurface{}
	NewProjectile(200, 354).Render(s)

	require.Len(t, s.calls, 1)
	assert.Equal(t, drawCall{op: "fill", x: 198, y: 348, w: 4, h: 12}, s.calls[0])
}

func TestCollisionKindString(t *testing.T) {
	assert.Equal(t, "NotYet", NotYet.String())
	assert.Equal(t, "EndOfMap", EndOfMap.String())
	assert.Equal(t, "Hit", Hit.String())
	assert.Equal(t, "Unknown", CollisionKind(42).String())
}
