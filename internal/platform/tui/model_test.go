package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) (Model, *shooter.ManualClock) {
	t.Helper()
	clock := shooter.NewManualClock(0)
	m, err := NewModel(Options{
		Config:  config.DefaultShooterConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Store:   store,
		Clock:   clock,
	})
	require.NoError(t, err)
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestModelMovesCraftOnTick(t *testing.T) {
	m, clock := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	clock.Advance(100)
	m = update(t, m, TickMsg(time.Now()))

	assert.Equal(t, 220.0, m.Scene().Craft().X())
	assert.Contains(t, m.run.screen.String(), string(FillRune))
}

func TestModelSynthesisedReleaseStopsCraft(t *testing.T) {
	m, clock := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	clock.Advance(100)
	m = update(t, m, TickMsg(time.Now().Add(time.Second)))

	assert.Equal(t, 0, m.Scene().Craft().Direction())
	x := m.Scene().Craft().X()

	clock.Advance(100)
	m = update(t, m, TickMsg(time.Now().Add(time.Second)))
	assert.Equal(t, x, m.Scene().Craft().X())
}

func TestModelFire(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Equal(t, 1, m.Scene().Stats().Projectiles)
}

func TestModelPause(t *testing.T) {
	m, clock := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, runeKey('p'))
	require.True(t, m.Paused())
	assert.Equal(t, 0, m.Scene().Craft().Direction(), "pausing releases held keys")
	assert.Contains(t, m.run.screen.String(), "PAUSED")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	clock.Advance(5000)
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg(time.Now()))

	assert.False(t, m.Paused())
	assert.Equal(t, 200.0, m.Scene().Craft().X(), "nothing moves across a pause")
	assert.NotContains(t, m.run.screen.String(), "PAUSED", "resuming redraws the whole playfield")
	assert.Contains(t, m.View(), "targets 7")
}

func TestModelRestartAndQuitRecordSessions(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer store.Close()

	m, _ := newTestModel(t, store)
	first := m.Scene()

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, runeKey('r'))
	assert.NotSame(t, first, m.Scene(), "restart builds a new scene")
	assert.Equal(t, 0, m.Scene().Stats().ShotsFired)

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())

	// Closing again after the program exits records nothing new.
	m.Close(storage.EndDisconnect)

	sessions, err := store.RecentSessions(10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	reasons := []string{sessions[0].EndReason, sessions[1].EndReason}
	assert.ElementsMatch(t, []string{storage.EndRestart, storage.EndQuit}, reasons)
	for _, s := range sessions {
		assert.Equal(t, "local", s.Origin)
		if s.EndReason == storage.EndRestart {
			assert.Equal(t, 1, s.ShotsFired)
		}
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 42, Height: 44})

	assert.Equal(t, 40, m.run.screen.Width())
	assert.Equal(t, 20, m.run.screen.Height())
	assert.Contains(t, m.run.screen.String(), string(FillRune), "the scene is redrawn at the new size")
}

func TestModelResizeWhilePausedKeepsBanner(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = update(t, m, runeKey('p'))
	m = update(t, m, tea.WindowSizeMsg{Width: 62, Height: 34})

	rows := strings.Split(m.run.screen.String(), "\n")
	require.Len(t, rows, m.run.screen.Height())
	assert.Contains(t, rows[m.run.screen.Height()/2], "PAUSED")
}

func TestModelViewShowsHelp(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()

	assert.True(t, strings.Contains(view, "fire"), "help footer lists the fire key")
}
