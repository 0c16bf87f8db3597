package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-checkers/internal/core"
	"github.com/vovakirdan/tui-checkers/internal/storage"
)

type fakeHistory struct {
	sessions []storage.SessionInfo
	moves    map[int64][]storage.MoveEntry
	err      error
}

func (f *fakeHistory) RecentSessions(int) ([]storage.SessionInfo, error) {
	return f.sessions, f.err
}

func (f *fakeHistory) SessionMoves(id int64) ([]storage.MoveEntry, error) {
	return f.moves[id], f.err
}

func sampleHistory() *fakeHistory {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &fakeHistory{
		sessions: []storage.SessionInfo{
			{ID: 2, Variant: "checkers", Moves: 1, StartedAt: now, EndedAt: now.Add(time.Minute)},
			{ID: 1, Variant: "checkers-diagonal", Moves: 0, StartedAt: now.Add(-time.Hour)},
		},
		moves: map[int64][]storage.MoveEntry{
			2: {{Seq: 1, From: core.Point{X: 0, Y: 2}, To: core.Point{X: 0, Y: 1}}},
		},
	}
}

func TestHistoryLoadsNewestSession(t *testing.T) {
	m := NewHistoryModel(sampleHistory(), 100, 30)

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(2), sel.ID)
	require.Len(t, m.Moves(), 1)
	assert.Contains(t, m.View(), "(0,2) -> (0,1)")
}

func TestHistoryCursorReloadsMoves(t *testing.T) {
	m := NewHistoryModel(sampleHistory(), 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(HistoryModel)

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(1), sel.ID)
	assert.Empty(t, m.Moves())
}

func TestHistoryEmpty(t *testing.T) {
	m := NewHistoryModel(&fakeHistory{}, 100, 30)

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No sessions recorded yet")
}

func TestHistoryError(t *testing.T) {
	boom := errors.New("disk gone")
	m := NewHistoryModel(&fakeHistory{err: boom}, 100, 30)

	assert.ErrorIs(t, m.Err(), boom)
	assert.Contains(t, m.View(), "disk gone")
}

func TestHistoryQuit(t *testing.T) {
	m := NewHistoryModel(sampleHistory(), 100, 30)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.True(t, isQuit(cmd))
	assert.Empty(t, next.View())
}

func TestHistoryNarrowHidesMoves(t *testing.T) {
	m := NewHistoryModel(sampleHistory(), 100, 30)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	m = next.(HistoryModel)

	assert.NotContains(t, m.View(), "(0,2) -> (0,1)")
	sel, _ := m.Selected()
	assert.Equal(t, int64(2), sel.ID, "resize keeps the cursor")
}

func TestFormatMove(t *testing.T) {
	mv := storage.MoveEntry{Seq: 3, From: core.Point{X: 2, Y: 2}, To: core.Point{X: 1, Y: 1}}
	assert.Equal(t, "3. (2,2) -> (1,1)", FormatMove(mv))
}
