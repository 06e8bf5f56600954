// Package shooter implements the arcade shooter simulation: a craft sliding
// along the bottom of the playfield, projectiles flying up, and a fixed set
// of stationary targets they destroy.
//
// The package is host-agnostic. Drawing, keyboard input and the frame loop
// are supplied by a Host (a terminal, an SSH session, a window), which calls
// Scene.Advance and Scene.Render once per frame on a single goroutine.
package shooter

import (
	"errors"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Construction errors. Each aborts NewScene; no partially built scene is
// ever returned.
var (
	ErrNoHost         = errors.New("shooter: no host to attach to")
	ErrNoInput        = errors.New("shooter: host has no input source")
	ErrSurfaceCreate  = errors.New("shooter: cannot create drawing surface")
	ErrSurfaceInvalid = errors.New("shooter: host returned an unusable drawing surface")
	ErrInvalidConfig  = config.ErrInvalidConfig
)

// Surface is the 2D drawing target. Coordinates are playfield units with the
// origin at the top-left corner.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	SetFillStyle(c core.Color)
}

// KeyHandler receives key transitions from an InputSource.
type KeyHandler func(code core.KeyCode, edge core.KeyEdge)

// InputSource delivers key events to subscribed handlers on the frame
// goroutine.
type InputSource interface {
	// Subscribe registers a handler and returns the function detaching it.
	Subscribe(h KeyHandler) (unsubscribe func())
}

// Host supplies the collaborators a Scene needs and takes the surface back
// when the scene is disposed.
type Host interface {
	Input() (InputSource, error)
	CreateSurface(width, height float64) (Surface, error)
	ReleaseSurface(s Surface)
}
