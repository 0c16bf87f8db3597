package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-checkers/internal/storage"
)

// History layout constants
const (
	minWidthForMoves = 80 // Minimum width to show the move pane
	movesWidth       = 24 // Width of the move pane
	maxSessions      = 100
)

// HistorySource is the read side of the move journal.
type HistorySource interface {
	RecentSessions(limit int) ([]storage.SessionInfo, error)
	SessionMoves(sessionID int64) ([]storage.MoveEntry, error)
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "newer"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "older"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing journaled sessions.
type HistoryModel struct {
	source    HistorySource
	sessions  []storage.SessionInfo
	moves     []storage.MoveEntry
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	err       error
	quitting  bool
	showMoves bool
}

// NewHistoryModel creates a history browser and loads the newest sessions.
func NewHistoryModel(source HistorySource, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		source:    source,
		keys:      DefaultHistoryKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		showMoves: width >= minWidthForMoves,
	}
	m.table = m.createTable()

	m.sessions, m.err = source.RecentSessions(maxSessions)
	m.updateTableRows()
	m.loadMoves()
	return m
}

// createTable creates a new table sized for the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: "Variant", Width: 18},
		{Title: "Moves", Width: 6},
		{Title: "Started", Width: 13},
		{Title: "State", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, help and borders
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

// updateTableRows refills the table from m.sessions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			fmt.Sprintf("%d", s.ID),
			s.Variant,
			fmt.Sprintf("%d", s.Moves),
			s.StartedAt.Format("Jan 02 15:04"),
			sessionState(s),
		}
	}
	m.table.SetRows(rows)
}

func sessionState(s storage.SessionInfo) string {
	if s.Finished() {
		return "done"
	}
	return "open"
}

// loadMoves loads the moves of the highlighted session.
func (m *HistoryModel) loadMoves() {
	m.moves = nil
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sessions) {
		return
	}
	moves, err := m.source.SessionMoves(m.sessions[i].ID)
	if err != nil {
		m.err = err
		return
	}
	m.moves = moves
}

// Selected returns the highlighted session.
func (m HistoryModel) Selected() (storage.SessionInfo, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sessions) {
		return storage.SessionInfo{}, false
	}
	return m.sessions[i], true
}

// Moves returns the moves of the highlighted session.
func (m HistoryModel) Moves() []storage.MoveEntry {
	return m.moves
}

// Err returns the last storage error.
func (m HistoryModel) Err() error {
	return m.err
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			m.loadMoves()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showMoves = m.width >= minWidthForMoves
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("SESSION HISTORY", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := boxStyle.Render(m.renderTableContent())
	if m.showMoves {
		movesRendered := boxStyle.Width(movesWidth).Render(m.renderMoves())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", movesRendered))
	} else {
		b.WriteString(tableRendered)
	}

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.err.Error()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nPlay a game to start the journal!")
	}

	return m.table.View()
}

// renderMoves lists the highlighted session's moves.
func (m HistoryModel) renderMoves() string {
	var b strings.Builder
	b.WriteString("Moves\n")
	b.WriteString(strings.Repeat("-", movesWidth-4))

	if len(m.moves) == 0 {
		b.WriteString("\n(none)")
		return b.String()
	}

	visible := max(m.height-10, 1)
	for i, mv := range m.moves {
		if i == visible {
			fmt.Fprintf(&b, "\n... %d more", len(m.moves)-visible)
			break
		}
		b.WriteString("\n")
		b.WriteString(FormatMove(mv))
	}
	return b.String()
}

// FormatMove renders a move as "n. (c,r) -> (c,r)".
func FormatMove(mv storage.MoveEntry) string {
	return fmt.Sprintf("%d. (%d,%d) -> (%d,%d)", mv.Seq, mv.From.X, mv.From.Y, mv.To.X, mv.To.Y)
}

// RunHistory runs the history browser.
func RunHistory(source HistorySource, width, height int) error {
	model := NewHistoryModel(source, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(HistoryModel); ok {
		return fm.Err()
	}
	return nil
}
