package shooter

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// drawCall records one surface operation.
type drawCall struct {
	op         string
	x, y, w, h float64
	color      core.Color
}

func (c drawCall) String() string {
	if c.op == "fill-style" {
		return fmt.Sprintf("%s(%s)", c.op, c.color)
	}
	return fmt.Sprintf("%s(%g,%g,%g,%g)", c.op, c.x, c.y, c.w, c.h)
}

// recordingSurface remembers every call made to it.
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) ClearRect(x, y, w, h float64) {
	s.calls = append(s.calls, drawCall{op: "clear", x: x, y: y, w: w, h: h})
}

func (s *recordingSurface) FillRect(x, y, w, h float64) {
	s.calls = append(s.calls, drawCall{op: "fill", x: x, y: y, w: w, h: h})
}

func (s *recordingSurface) SetFillStyle(c core.Color) {
	s.calls = append(s.calls, drawCall{op: "fill-style", color: c})
}

func (s *recordingSurface) fills() []drawCall {
	var out []drawCall
	for _, c := range s.calls {
		if c.op == "fill" {
			out = append(out, c)
		}
	}
	return out
}

// fakeInput hands key events to whatever is subscribed.
type fakeInput struct {
	handler KeyHandler
	events  *[]string
}

func (in *fakeInput) Subscribe(h KeyHandler) func() {
	in.handler = h
	*in.events = append(*in.events, "subscribe")
	return func() {
		in.handler = nil
		*in.events = append(*in.events, "unsubscribe")
	}
}

func (in *fakeInput) press(code core.KeyCode) {
	if in.handler != nil {
		in.handler(code, core.KeyDown)
	}
}

func (in *fakeInput) release(code core.KeyCode) {
	if in.handler != nil {
		in.handler(code, core.KeyUp)
	}
}

// fakeHost implements Host with switchable failures.
type fakeHost struct {
	input    *fakeInput
	surface  *recordingSurface
	events   []string
	inputErr error
	nilInput bool
	surfErr  error
	nilSurf  bool
}

func newFakeHost() *fakeHost {
	h := &fakeHost{surface: &recordingSurface{}}
	h.input = &fakeInput{events: &h.events}
	return h
}

func (h *fakeHost) Input() (InputSource, error) {
	if h.inputErr != nil {
		return nil, h.inputErr
	}
	if h.nilInput {
		return nil, nil
	}
	return h.input, nil
}

func (h *fakeHost) CreateSurface(width, height float64) (Surface, error) {
	if h.surfErr != nil {
		return nil, h.surfErr
	}
	if h.nilSurf {
		return nil, nil
	}
	h.events = append(h.events, "create-surface")
	return h.surface, nil
}

func (h *fakeHost) ReleaseSurface(s Surface) {
	h.events = append(h.events, "release-surface")
}

var errBoom = errors.New("boom")
