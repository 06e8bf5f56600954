package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// binding maps a physical key to a simulation key code.
type binding struct {
	key  ebiten.Key
	code core.KeyCode
}

// keyBindings lists the keys forwarded to the scene, in polling order.
var keyBindings = []binding{
	{ebiten.KeyArrowLeft, core.KeyArrowLeft},
	{ebiten.KeyA, core.KeyArrowLeft},
	{ebiten.KeyArrowRight, core.KeyArrowRight},
	{ebiten.KeyD, core.KeyArrowRight},
	{ebiten.KeySpace, core.KeySpace},
}

// actionKeys maps keys handled by the window itself.
var actionKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// Input is a shooter.InputSource fed from Ebitengine's key state.
//
// Several physical keys share a code, so a code is released only when the
// last physical key bound to it goes up. While suspended, presses are
// dropped and nothing is forwarded.
type Input struct {
	handlers  map[int]shooter.KeyHandler
	order     []int
	nextID    int
	held      map[ebiten.Key]core.KeyCode
	suspended bool
}

// NewInput creates an input source with no subscribers.
func NewInput() *Input {
	return &Input{
		handlers: make(map[int]shooter.KeyHandler),
		held:     make(map[ebiten.Key]core.KeyCode),
	}
}

// Subscribe registers h and returns the function detaching it.
func (in *Input) Subscribe(h shooter.KeyHandler) func() {
	id := in.nextID
	in.nextID++
	in.handlers[id] = h
	in.order = append(in.order, id)

	return func() {
		delete(in.handlers, id)
		for i, v := range in.order {
			if v == id {
				in.order = append(in.order[:i], in.order[i+1:]...)
				break
			}
		}
	}
}

// Emit delivers one key transition to every subscriber in subscription order.
func (in *Input) Emit(code core.KeyCode, edge core.KeyEdge) {
	for _, id := range append([]int(nil), in.order...) {
		if h, ok := in.handlers[id]; ok {
			h(code, edge)
		}
	}
}

// keyState reports per-frame key transitions. inpututil satisfies it in
// the running game; tests substitute a scripted one.
type keyState interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// Poll forwards this frame's transitions of the bound keys and returns the
// first window action pressed, if any.
func (in *Input) Poll(keys keyState) core.Action {
	for _, b := range keyBindings {
		if keys.JustPressed(b.key) && !in.suspended {
			in.held[b.key] = b.code
			in.Emit(b.code, core.KeyDown)
		}
		if keys.JustReleased(b.key) {
			in.release(b.key)
		}
	}
	for _, a := range actionKeys {
		if keys.JustPressed(a.key) {
			return a.action
		}
	}
	return core.ActionNone
}

// Suspend releases every held code and drops presses until Resume.
func (in *Input) Suspend() {
	in.suspended = true
	for _, b := range keyBindings {
		in.release(b.key)
	}
}

// Resume forwards presses again.
func (in *Input) Resume() {
	in.suspended = false
}

// release forgets a held physical key and emits KeyUp once no other key
// bound to the same code is still down.
func (in *Input) release(k ebiten.Key) {
	code, ok := in.held[k]
	if !ok {
		return
	}
	delete(in.held, k)
	for _, other := range in.held {
		if other == code {
			return
		}
	}
	in.Emit(code, core.KeyUp)
}
