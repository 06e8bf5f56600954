package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/storage"
)

func TestHistoryModelTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	for _, origin := range []string{"local", "ssh:alice", "local"} {
		_, err := store.SaveSession(storage.SessionRecord{Origin: origin, StartedAt: time.Now(), EndReason: storage.EndQuit})
		require.NoError(t, err)
	}

	m := NewHistoryModel(store, 100, 30)
	assert.Equal(t, allOrigins, m.Tab())
	assert.Len(t, m.Sessions(), 3)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	assert.Equal(t, "local", m.Tab())
	assert.Len(t, m.Sessions(), 2)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	assert.Equal(t, "ssh:alice", m.Tab(), "tabs wrap around")
	assert.Len(t, m.Sessions(), 1)

	assert.Contains(t, m.View(), "SESSION HISTORY")
	assert.Contains(t, m.View(), "3 sessions")
}

func TestHistoryModelEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	m := NewHistoryModel(store, 80, 24)

	assert.Contains(t, m.View(), "No sessions recorded yet.")

	next, cmd := m.Update(runeKey('q'))
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}
