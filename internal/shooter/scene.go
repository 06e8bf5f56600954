package shooter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Scene owns the whole simulation: one craft, the projectiles in flight and
// the remaining targets. It must only be used from the host's frame goroutine.
type Scene struct {
	cfg    config.ShooterConfig
	host   Host
	clock  Clock
	logger *log.Logger

	surface     Surface
	unsubscribe func()

	craft       *Craft
	projectiles []*Projectile
	targets     []*Target

	startedAt  float64
	lastUpdate float64
	lastFire   float64
	hasFired   bool
	shotsFired int

	dirty    bool // simulation changed since the last Render
	disposed bool
}

// Stats summarises a scene for status lines and session history.
type Stats struct {
	ElapsedMs        float64
	ShotsFired       int
	Projectiles      int
	TargetsRemaining int
	Cleared          bool // every target destroyed
}

// Snapshot is a read-only copy of every entity's bounds.
type Snapshot struct {
	Craft       core.Box
	Projectiles []core.Box
	Targets     []core.Box
}

// NewScene builds a scene on host. A nil clock means a SystemClock and a nil
// logger discards output.
//
// The drawing surface is created before the key handler is attached, so a
// failed construction leaves nothing registered with the host.
func NewScene(host Host, cfg config.ShooterConfig, clock Clock, logger *log.Logger) (*Scene, error) {
	if host == nil {
		return nil, ErrNoHost
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = NewSystemClock()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input, err := host.Input()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoInput, err)
	}
	if input == nil {
		return nil, ErrNoInput
	}

	surface, err := host.CreateSurface(cfg.Playfield.Width, cfg.Playfield.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceCreate, err)
	}
	if surface == nil {
		return nil, ErrSurfaceInvalid
	}

	now := clock.Now()
	s := &Scene{
		cfg:        cfg,
		host:       host,
		clock:      clock,
		logger:     logger,
		surface:    surface,
		craft:      NewCraft(cfg),
		targets:    InitialTargets(cfg.Targets),
		startedAt:  now,
		lastUpdate: now,
		dirty:      true,
	}

	logger.Debug("adding listeners")
	s.unsubscribe = input.Subscribe(s.HandleKey)

	logger.Debug("scene created",
		"width", cfg.Playfield.Width,
		"height", cfg.Playfield.Height,
		"targets", len(s.targets),
	)
	return s, nil
}

// HandleKey maps a key transition to craft intent or a fire attempt.
// Releasing either arrow stops the craft, whichever arrow was pressed last.
// Unknown keys are ignored.
func (s *Scene) HandleKey(code core.KeyCode, edge core.KeyEdge) {
	switch {
	case code == core.KeyArrowLeft && edge == core.KeyDown:
		s.craft.SetDirection(-1)
	case code == core.KeyArrowRight && edge == core.KeyDown:
		s.craft.SetDirection(1)
	case (code == core.KeyArrowLeft || code == core.KeyArrowRight) && edge == core.KeyUp:
		s.craft.SetDirection(0)
	case code == core.KeySpace && edge == core.KeyDown:
		s.attemptFire()
	}
}

// attemptFire spawns a projectile unless the previous one left less than the
// cooldown ago. Dropped attempts are not queued.
func (s *Scene) attemptFire() {
	now := s.clock.Now()
	if s.hasFired && now-s.lastFire < s.cfg.Fire.CooldownMs {
		s.logger.Debug("fire dropped", "since_last_ms", now-s.lastFire)
		return
	}
	s.hasFired = true
	s.lastFire = now
	s.shotsFired++
	s.projectiles = append(s.projectiles, s.craft.Fire())
}

// Advance runs one simulation step covering the time since the previous
// call (or since construction). A clock that went backwards yields an empty
// step.
func (s *Scene) Advance() {
	now := s.clock.Now()
	dt := max(now-s.lastUpdate, 0)
	s.lastUpdate = now

	if s.craft.Direction() != 0 {
		s.craft.Advance(dt)
		s.dirty = true
	}

	if len(s.projectiles) > 0 {
		for _, p := range s.projectiles {
			p.Advance(dt)
		}
		s.dirty = true
	}

	// Mark: projectiles flag the targets they hit. EndOfMap and Hit both
	// retire the projectile.
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.ResolveCollision(s.targets) == NotYet {
			kept = append(kept, p)
		}
	}
	clear(s.projectiles[len(kept):])
	s.projectiles = kept

	// Sweep: drop the targets marked above.
	alive := s.targets[:0]
	for _, t := range s.targets {
		if t.Alive() {
			alive = append(alive, t)
		}
	}
	if len(alive) != len(s.targets) {
		clear(s.targets[len(alive):])
		s.dirty = true
	}
	s.targets = alive
}

// Render draws the scene if anything changed since the last draw and reports
// whether it did. Draw order is craft, projectiles, then targets.
func (s *Scene) Render() bool {
	if !s.dirty || s.disposed {
		return false
	}

	s.surface.ClearRect(0, 0, s.cfg.Playfield.Width, s.cfg.Playfield.Height)
	s.surface.SetFillStyle(s.cfg.Render.Fill)

	s.craft.Render(s.surface)
	for _, p := range s.projectiles {
		p.Render(s.surface)
	}
	for _, t := range s.targets {
		t.Render(s.surface)
	}

	s.dirty = false
	return true
}

// Resync moves the scene's notion of "last update" to now without
// simulating the gap. Hosts call it when resuming from pause.
func (s *Scene) Resync() {
	s.lastUpdate = s.clock.Now()
}

// Invalidate forces the next Render to draw, e.g. after the host lost the
// surface contents on resize.
func (s *Scene) Invalidate() {
	s.dirty = true
}

// Dirty reports whether the next Render will draw.
func (s *Scene) Dirty() bool {
	return s.dirty
}

// Craft returns the player's craft.
func (s *Scene) Craft() *Craft {
	return s.craft
}

// Stats returns counters describing the session so far.
func (s *Scene) Stats() Stats {
	return Stats{
		ElapsedMs:        s.clock.Now() - s.startedAt,
		ShotsFired:       s.shotsFired,
		Projectiles:      len(s.projectiles),
		TargetsRemaining: len(s.targets),
		Cleared:          len(s.targets) == 0,
	}
}

// Snapshot copies the bounds of every entity.
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		Craft:       s.craft.Box(),
		Projectiles: make([]core.Box, 0, len(s.projectiles)),
		Targets:     make([]core.Box, 0, len(s.targets)),
	}
	for _, p := range s.projectiles {
		snap.Projectiles = append(snap.Projectiles, p.Box())
	}
	for _, t := range s.targets {
		snap.Targets = append(snap.Targets, t.Box())
	}
	return snap
}

// Dispose detaches the key handler and hands the surface back to the host,
// in that order. Only the first call has an effect.
func (s *Scene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	s.logger.Debug("removing listeners")
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.host.ReleaseSurface(s.surface)
	s.surface = nil
	s.logger.Debug("scene disposed", "shots", s.shotsFired, "targets_left", len(s.targets))
}
