package tui

import (
	"errors"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// FillRune is drawn for every cell an entity touches.
const FillRune = '█'

var (
	errNoTerminalInput = errors.New("tui: terminal input is not attached")
	errNoScreen        = errors.New("tui: no screen buffer to draw on")
	errScreenTooSmall  = errors.New("tui: screen too small for the playfield")
	errSurfaceBusy     = errors.New("tui: surface already in use")
)

// CellSurface rasterises playfield rectangles onto a character grid. The
// whole screen maps onto the playfield, so each cell covers
// width/cols x height/rows units. A rectangle fills every cell it overlaps,
// which keeps thin projectiles visible at any terminal size.
type CellSurface struct {
	screen     *core.Screen
	width      float64
	height     float64
	fill       core.Color
	background core.Color
}

// NewCellSurface creates a surface drawing a width x height playfield on screen.
func NewCellSurface(screen *core.Screen, width, height float64, background core.Color) *CellSurface {
	return &CellSurface{
		screen:     screen,
		width:      width,
		height:     height,
		fill:       core.ColorWhite,
		background: background,
	}
}

// ClearRect blanks the cells under the rectangle.
func (s *CellSurface) ClearRect(x, y, w, h float64) {
	s.screen.FillRect(s.cells(x, y, w, h), ' ', s.background)
}

// FillRect paints the cells under the rectangle in the current fill colour.
func (s *CellSurface) FillRect(x, y, w, h float64) {
	s.screen.FillRect(s.cells(x, y, w, h), FillRune, s.fill)
}

// SetFillStyle selects the colour for subsequent FillRect calls.
func (s *CellSurface) SetFillStyle(c core.Color) {
	s.fill = c
}

// cells converts a playfield rectangle to the covered cell range. Clipping
// to the screen is left to core.Screen.
func (s *CellSurface) cells(x, y, w, h float64) core.Rect {
	if w <= 0 || h <= 0 {
		return core.Rect{}
	}
	sx := s.width / float64(s.screen.Width())
	sy := s.height / float64(s.screen.Height())

	x0 := int(math.Floor(x / sx))
	y0 := int(math.Floor(y / sy))
	x1 := int(math.Ceil((x + w) / sx))
	y1 := int(math.Ceil((y + h) / sy))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// TerminalHost is the shooter.Host of a Bubble Tea program: key presses
// come from a KeyInput and drawing goes to a shared screen buffer.
type TerminalHost struct {
	input      *KeyInput
	screen     *core.Screen
	background core.Color
	surface    *CellSurface
}

// NewTerminalHost creates a host around input and screen.
func NewTerminalHost(input *KeyInput, screen *core.Screen, background core.Color) *TerminalHost {
	return &TerminalHost{
		input:      input,
		screen:     screen,
		background: background,
	}
}

// Input returns the terminal's key source.
func (h *TerminalHost) Input() (shooter.InputSource, error) {
	if h.input == nil {
		return nil, errNoTerminalInput
	}
	return h.input, nil
}

// CreateSurface hands out the single drawing surface of the screen.
func (h *TerminalHost) CreateSurface(width, height float64) (shooter.Surface, error) {
	switch {
	case h.screen == nil:
		return nil, errNoScreen
	case h.screen.Width() < 1 || h.screen.Height() < 1:
		return nil, errScreenTooSmall
	case h.surface != nil:
		return nil, errSurfaceBusy
	}
	h.surface = NewCellSurface(h.screen, width, height, h.background)
	return h.surface, nil
}

// ReleaseSurface takes the surface back and blanks the screen.
func (h *TerminalHost) ReleaseSurface(s shooter.Surface) {
	if cs, ok := s.(*CellSurface); !ok || cs != h.surface {
		return
	}
	h.surface = nil
	h.screen.Clear()
}
