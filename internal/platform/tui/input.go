package tui

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// Default release windows, used when the config leaves them at zero.
const (
	DefaultInitialRelease = 500 * time.Millisecond
	DefaultRepeatRelease  = 120 * time.Millisecond
)

// heldKey tracks a key the terminal reported as pressed.
type heldKey struct {
	lastSeen time.Time
	repeats  int
}

type subscriber struct {
	id      int
	handler shooter.KeyHandler
}

// KeyInput is a shooter.InputSource fed by terminal key presses.
//
// Terminals only report presses (and auto-repeats of a held key), never
// releases. KeyInput therefore treats a key as held until no repeat has
// arrived for a while and then emits the missing KeyUp. Before the first
// auto-repeat the window is the longer initialRelease, which covers the
// keyboard's repeat delay; afterwards it drops to repeatRelease.
type KeyInput struct {
	subs   []subscriber
	nextID int
	held   map[core.KeyCode]*heldKey

	initialRelease time.Duration
	repeatRelease  time.Duration
}

// NewKeyInput creates an input source with the given release windows.
// Non-positive windows fall back to the defaults.
func NewKeyInput(initialRelease, repeatRelease time.Duration) *KeyInput {
	if initialRelease <= 0 {
		initialRelease = DefaultInitialRelease
	}
	if repeatRelease <= 0 {
		repeatRelease = DefaultRepeatRelease
	}
	return &KeyInput{
		held:           make(map[core.KeyCode]*heldKey),
		initialRelease: initialRelease,
		repeatRelease:  repeatRelease,
	}
}

// Subscribe registers h for every key transition. The returned function
// detaches it; calling it more than once is harmless.
func (in *KeyInput) Subscribe(h shooter.KeyHandler) func() {
	id := in.nextID
	in.nextID++
	in.subs = append(in.subs, subscriber{id: id, handler: h})

	return func() {
		for i, s := range in.subs {
			if s.id == id {
				in.subs = append(in.subs[:i], in.subs[i+1:]...)
				return
			}
		}
	}
}

// Press records a key press (or auto-repeat) seen at the given time and
// emits KeyDown. Pressing one arrow releases the opposite one first.
func (in *KeyInput) Press(code core.KeyCode, at time.Time) {
	if other, ok := oppositeArrow(code); ok {
		if _, held := in.held[other]; held {
			in.release(other)
		}
	}

	if k, ok := in.held[code]; ok {
		k.lastSeen = at
		k.repeats++
	} else {
		in.held[code] = &heldKey{lastSeen: at}
	}
	in.emit(code, core.KeyDown)
}

// Expire emits KeyUp for every key whose release window has elapsed at now.
func (in *KeyInput) Expire(now time.Time) {
	for code, k := range in.held {
		window := in.initialRelease
		if k.repeats > 0 {
			window = in.repeatRelease
		}
		if now.Sub(k.lastSeen) >= window {
			in.release(code)
		}
	}
}

// ReleaseAll emits KeyUp for every held key.
func (in *KeyInput) ReleaseAll() {
	for code := range in.held {
		in.release(code)
	}
}

func (in *KeyInput) release(code core.KeyCode) {
	delete(in.held, code)
	in.emit(code, core.KeyUp)
}

func (in *KeyInput) emit(code core.KeyCode, edge core.KeyEdge) {
	// Handlers may unsubscribe while being called.
	subs := append([]subscriber(nil), in.subs...)
	for _, s := range subs {
		s.handler(code, edge)
	}
}

func oppositeArrow(code core.KeyCode) (core.KeyCode, bool) {
	switch code {
	case core.KeyArrowLeft:
		return core.KeyArrowRight, true
	case core.KeyArrowRight:
		return core.KeyArrowLeft, true
	}
	return "", false
}
