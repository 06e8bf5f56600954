package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Origin is recorded with sessions played in the window.
const Origin = "window"

// Options configure a window Game.
type Options struct {
	Config   config.ShooterConfig
	TickRate int
	Scale    int            // window pixels per playfield unit
	Store    *storage.Store // nil disables session history
	Logger   *log.Logger
	Clock    shooter.Clock
}

// inpututilState reads key transitions from ebiten's inpututil.
type inpututilState struct{}

func (inpututilState) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (inpututilState) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// Game implements ebiten.Game around a shooter scene.
type Game struct {
	opts  Options
	input *Input
	host  *Host
	keys  keyState
	scene *shooter.Scene

	paused    bool
	startedAt time.Time
	recorded  bool
}

// New creates the game and its first scene.
func New(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	input := NewInput()
	g := &Game{
		opts:  opts,
		input: input,
		host:  NewHost(input, opts.Config.Playfield.Background),
		keys:  inpututilState{},
	}
	if err := g.start(); err != nil {
		return nil, fmt.Errorf("window: cannot start scene: %w", err)
	}
	return g, nil
}

func (g *Game) start() error {
	scene, err := shooter.NewScene(g.host, g.opts.Config, g.opts.Clock, g.opts.Logger)
	if err != nil {
		return err
	}
	g.scene = scene
	g.startedAt = time.Now()
	g.recorded = false
	g.paused = false
	return nil
}

// Close records the running scene (once) and disposes it.
func (g *Game) Close(reason string) {
	if g.scene == nil {
		return
	}
	if !g.recorded && g.opts.Store != nil {
		rec := storage.NewSessionRecord(Origin, g.startedAt, g.scene.Stats(), reason)
		if _, err := g.opts.Store.SaveSession(rec); err != nil {
			g.opts.Logger.Warn("could not save session", "error", err)
		}
	}
	g.recorded = true
	g.scene.Dispose()
}

// Update polls input and advances the simulation one frame.
func (g *Game) Update() error {
	switch g.input.Poll(g.keys) {
	case core.ActionQuit:
		g.Close(storage.EndQuit)
		return ebiten.Termination
	case core.ActionPause:
		g.paused = !g.paused
		if g.paused {
			g.input.Suspend()
		} else {
			g.input.Resume()
			g.scene.Resync()
		}
	case core.ActionRestart:
		g.Close(storage.EndRestart)
		g.input.Resume()
		if err := g.start(); err != nil {
			return err
		}
	}

	if g.paused {
		g.scene.Resync()
		return nil
	}
	g.scene.Advance()
	return nil
}

// Draw renders the scene into its canvas when it changed and shows the canvas.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Render()
	if canvas := g.host.Canvas(); canvas != nil {
		screen.DrawImage(canvas, &ebiten.DrawImageOptions{})
	}
}

// Layout fixes the logical screen to the playfield size.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.opts.Config.Playfield.Width), int(g.opts.Config.Playfield.Height)
}

// Scene returns the scene currently running.
func (g *Game) Scene() *shooter.Scene {
	return g.scene
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w*g.opts.Scale, h*g.opts.Scale)
	ebiten.SetWindowTitle("shooter")
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	runErr := ebiten.RunGame(g)
	g.Close(storage.EndQuit)
	return runErr
}
