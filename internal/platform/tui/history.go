package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// allOrigins is the first tab of the history screen.
const allOrigins = "all"

// maxHistoryRows caps the sessions loaded per tab.
const maxHistoryRows = 100

// HistoryKeyMap defines the key bindings for the session history screen.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextTab, k.PrevTab, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next origin"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev origin"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model browsing recorded sessions, one tab
// per origin.
type HistoryModel struct {
	store    *storage.Store
	tabs     []string
	tab      int
	sessions []storage.SessionRecord
	summary  storage.Summary
	err      error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates the history screen and loads the first tab.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		tabs:   []string{allOrigins},
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	if origins, err := store.Origins(); err == nil {
		m.tabs = append(m.tabs, origins...)
	} else {
		m.err = err
	}
	if sum, err := store.Summarize(); err == nil {
		m.summary = sum
	}

	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a table sized to the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Origin", Width: 14},
		{Title: "Time", Width: 8},
		{Title: "Shots", Width: 5},
		{Title: "Left", Width: 7},
		{Title: "End", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for title, tabs, summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches the sessions of the selected tab.
func (m *HistoryModel) load() {
	var err error
	if origin := m.tabs[m.tab]; origin == allOrigins {
		m.sessions, err = m.store.RecentSessions(maxHistoryRows)
	} else {
		m.sessions, err = m.store.SessionsByOrigin(origin, maxHistoryRows)
	}
	if err != nil {
		m.err = err
		m.sessions = nil
	}

	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		left := fmt.Sprintf("%d", s.TargetsRemaining)
		if s.Cleared {
			left = "cleared"
		}
		rows[i] = table.Row{
			s.StartedAt.Format("Jan 02 15:04"),
			s.Origin,
			s.Duration.Truncate(time.Second).String(),
			fmt.Sprintf("%d", s.ShotsFired),
			left,
			s.EndReason,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab - 1 + len(m.tabs)) % len(m.tabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := tabStyle.Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(t)
		} else {
			tabs[i] = tabStyle.Render(t)
		}
	}

	var content string
	switch {
	case m.err != nil:
		content = dimStyle.Render("Could not read sessions: " + m.err.Error())
	case len(m.sessions) == 0:
		content = dimStyle.Italic(true).Padding(2, 4).Render("No sessions recorded yet.\nPlay a game to record one!")
	default:
		content = m.table.View()
	}

	summary := fmt.Sprintf("%d sessions  %d cleared  %d shots  %s played",
		m.summary.Sessions, m.summary.Cleared, m.summary.ShotsFired, m.summary.PlayTime.Truncate(time.Second))

	var b strings.Builder
	b.WriteString(titleStyle.Render("SESSION HISTORY"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(content))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(summary))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Tab returns the origin filter currently shown.
func (m HistoryModel) Tab() string {
	return m.tabs[m.tab]
}

// Sessions returns the rows currently loaded.
func (m HistoryModel) Sessions() []storage.SessionRecord {
	return m.sessions
}

// RunHistory runs the session history screen until the user quits.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
