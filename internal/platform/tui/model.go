package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Cells taken around the playfield by the border, status bar and help line.
const (
	chromeRows = 4
	chromeCols = 2
)

// Options configure a game Model.
type Options struct {
	Config  config.ShooterConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables session history
	Logger  *log.Logger
	Origin  string        // recorded with the session, e.g. "local" or "ssh:alice"
	Clock   shooter.Clock // nil means the system clock
}

// run is the state shared by every copy of a Model: the live scene and
// the bookkeeping needed to record it once it ends.
type run struct {
	opts   Options
	input  *KeyInput
	screen *core.Screen
	host   *TerminalHost
	scene  *shooter.Scene

	startedAt time.Time
	recorded  bool
}

// start builds a fresh scene on the run's host.
func (r *run) start() error {
	scene, err := shooter.NewScene(r.host, r.opts.Config, r.opts.Clock, r.opts.Logger)
	if err != nil {
		return err
	}
	r.scene = scene
	r.startedAt = time.Now()
	r.recorded = false
	return nil
}

// end records the current scene in the session store (once) and disposes it.
func (r *run) end(reason string) {
	if r.scene == nil {
		return
	}
	if !r.recorded {
		r.recorded = true
		r.record(reason)
	}
	r.scene.Dispose()
}

func (r *run) record(reason string) {
	if r.opts.Store == nil {
		return
	}
	rec := storage.NewSessionRecord(r.opts.Origin, r.startedAt, r.scene.Stats(), reason)
	if _, err := r.opts.Store.SaveSession(rec); err != nil {
		r.opts.Logger.Warn("could not save session", "origin", rec.Origin, "error", err)
		return
	}
	r.opts.Logger.Debug("session saved", "origin", rec.Origin, "reason", reason, "cleared", rec.Cleared)
}

// Model is the Bubble Tea model running one shooter scene in the terminal.
type Model struct {
	run      *run
	keys     *KeyMapper
	help     help.Model
	width    int
	height   int
	paused   bool
	quitting bool
	err      error
}

// NewModel creates the model and its first scene.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Origin == "" {
		opts.Origin = "local"
	}

	cols, rows := playfieldCells(
		opts.Runtime.ScreenW-chromeCols, opts.Runtime.ScreenH-chromeRows,
		opts.Config.Playfield.Width, opts.Config.Playfield.Height,
	)
	screen := core.NewScreen(cols, rows)
	input := NewKeyInput(
		time.Duration(opts.Config.Terminal.InitialReleaseMs)*time.Millisecond,
		time.Duration(opts.Config.Terminal.RepeatReleaseMs)*time.Millisecond,
	)

	r := &run{
		opts:   opts,
		input:  input,
		screen: screen,
		host:   NewTerminalHost(input, screen, opts.Config.Playfield.Background),
	}
	if err := r.start(); err != nil {
		return Model{}, fmt.Errorf("tui: cannot start scene: %w", err)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		run:    r,
		keys:   NewKeyMapper(),
		help:   h,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.run.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	code, action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.Close(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		m.paused = !m.paused
		if m.paused {
			// Held keys would otherwise keep the craft moving after resume.
			m.run.input.ReleaseAll()
			m.drawBanner()
		} else {
			m.run.scene.Resync()
			m.run.scene.Invalidate()
		}
		return m, nil

	case core.ActionRestart:
		return m.restart()
	}

	if code != "" && !m.paused {
		m.run.input.Press(code, time.Now())
	}
	return m, nil
}

// restart records the current scene and replaces it with a fresh one.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.run.end(storage.EndRestart)
	m.run.input.ReleaseAll()
	if err := m.run.start(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.paused = false
	return m, nil
}

// handleResize fits the playfield grid to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	cfg := m.run.opts.Config
	cols, rows := playfieldCells(msg.Width-chromeCols, msg.Height-chromeRows, cfg.Playfield.Width, cfg.Playfield.Height)
	m.run.screen.Resize(cols, rows)
	m.run.scene.Invalidate()
	m.run.scene.Render()
	m.drawBanner()

	return m, nil
}

// handleTick runs one frame: expire synthetic key holds, advance, draw.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	if m.paused {
		m.run.scene.Resync()
	} else {
		m.run.input.Expire(now)
		m.run.scene.Advance()
		m.run.scene.Render()
		m.drawBanner()
	}

	return m, tickCmd(m.run.opts.Runtime.TickRate)
}

// drawBanner writes PAUSED or CLEARED across the middle of the playfield.
// The scene's next full render wipes it.
func (m Model) drawBanner() {
	switch {
	case m.paused:
		m.run.screen.DrawTextCentered(m.run.screen.Height()/2, "PAUSED", core.ColorYellow)
	case m.run.scene.Stats().Cleared:
		m.run.screen.DrawTextCentered(m.run.screen.Height()/2, "CLEARED", core.ColorGreen)
	}
}

// View renders the playfield, status bar and key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		RenderPlayfield(m.run.screen),
		RenderStatus(m.run.scene.Stats(), m.paused),
		m.help.View(m.keys.Keys),
	)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Close ends the running scene with the given reason. It records the
// session at most once and is safe to call after the program exited.
func (m Model) Close(reason string) {
	m.run.end(reason)
}

// Scene returns the scene currently running.
func (m Model) Scene() *shooter.Scene {
	return m.run.scene
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and records the session when it ends.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, runErr := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Close(storage.EndQuit)
		if runErr == nil {
			runErr = fm.Err()
		}
	} else {
		model.Close(storage.EndQuit)
	}
	return runErr
}
