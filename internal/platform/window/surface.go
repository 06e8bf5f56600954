// Package window runs the shooter in a desktop window using Ebitengine.
// Unlike terminals, the window reports real key releases, so the scene
// sees exactly the key-down/key-up stream a keyboard produces.
package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

var (
	errSurfaceBusy = errors.New("window: surface already in use")
	errBadSize     = errors.New("window: surface size must be positive")
)

// palette maps core colours to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {0, 0, 0, 0xff},
	core.ColorBlack:   {0, 0, 0, 0xff},
	core.ColorRed:     {0xff, 0, 0, 0xff},
	core.ColorGreen:   {0, 0x80, 0, 0xff},
	core.ColorYellow:  {0xff, 0xff, 0, 0xff},
	core.ColorBlue:    {0, 0, 0xff, 0xff},
	core.ColorMagenta: {0xff, 0, 0xff, 0xff},
	core.ColorCyan:    {0, 0xff, 0xff, 0xff},
	core.ColorWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:  {0xff, 0xa5, 0, 0xff},
	core.ColorGray:    {0x80, 0x80, 0x80, 0xff},
	core.ColorSilver:  {0xc0, 0xc0, 0xc0, 0xff},
}

// RGBA returns the window colour for c. Unknown colours are opaque black.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// Surface draws onto an offscreen canvas that keeps its pixels between
// frames, so a frame the scene skips still shows the last picture.
type Surface struct {
	canvas     *ebiten.Image
	fill       color.RGBA
	background color.RGBA
}

// ClearRect paints the rectangle in the background colour.
func (s *Surface) ClearRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.canvas, float32(x), float32(y), float32(w), float32(h), s.background, false)
}

// FillRect paints the rectangle in the current fill colour.
func (s *Surface) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.canvas, float32(x), float32(y), float32(w), float32(h), s.fill, false)
}

// SetFillStyle selects the colour for subsequent FillRect calls.
func (s *Surface) SetFillStyle(c core.Color) {
	s.fill = RGBA(c)
}

// Host is the shooter.Host of the window: one input source and at most one
// live canvas.
type Host struct {
	input      *Input
	background core.Color
	surface    *Surface
}

// NewHost creates a window host whose canvas is cleared to background.
func NewHost(input *Input, background core.Color) *Host {
	return &Host{input: input, background: background}
}

// Input returns the window's key source.
func (h *Host) Input() (shooter.InputSource, error) {
	if h.input == nil {
		return nil, nil
	}
	return h.input, nil
}

// CreateSurface allocates the canvas.
func (h *Host) CreateSurface(width, height float64) (shooter.Surface, error) {
	if h.surface != nil {
		return nil, errSurfaceBusy
	}
	w, ht := int(width), int(height)
	if w <= 0 || ht <= 0 {
		return nil, errBadSize
	}
	bg := RGBA(h.background)
	canvas := ebiten.NewImage(w, ht)
	canvas.Fill(bg)

	h.surface = &Surface{
		canvas:     canvas,
		fill:       RGBA(core.ColorWhite),
		background: bg,
	}
	return h.surface, nil
}

// ReleaseSurface frees the canvas.
func (h *Host) ReleaseSurface(s shooter.Surface) {
	surf, ok := s.(*Surface)
	if !ok || surf != h.surface {
		return
	}
	surf.canvas.Dispose()
	h.surface = nil
}

// Canvas returns the live canvas, or nil between scenes.
func (h *Host) Canvas() *ebiten.Image {
	if h.surface == nil {
		return nil
	}
	return h.surface.canvas
}
