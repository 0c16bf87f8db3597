package checkers

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-checkers/internal/core"
	"github.com/vovakirdan/tui-checkers/internal/registry"
)

func newTestGame(t *testing.T, id string) *Game {
	t.Helper()
	g, err := registry.Create(id, registry.Setup{})
	require.NoError(t, err)
	game, ok := g.(*Game)
	require.True(t, ok)
	require.NoError(t, game.Reset(core.RuntimeConfig{ScreenW: testW, ScreenH: testH}))
	return game
}

func TestGameRegistered(t *testing.T) {
	assert.True(t, registry.Exists(ID))
	assert.True(t, registry.Exists(DiagonalID))

	forward := newTestGame(t, ID)
	assert.Equal(t, RuleForward, forward.Board().Rule())
	assert.Equal(t, ID, forward.ID())

	diagonal := newTestGame(t, DiagonalID)
	assert.Equal(t, RuleDiagonal, diagonal.Board().Rule())
	assert.Equal(t, DiagonalID, diagonal.ID())
}

func TestGameResetTooSmall(t *testing.T) {
	g := New(RuleForward, registry.Setup{})

	err := g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8})

	var tooSmall *ScreenTooSmallError
	require.ErrorAs(t, err, &tooSmall)
	assert.False(t, g.Running())
	assert.False(t, g.HandleEvent(core.KeyPress{Rune: 'q'}))
}

func TestGamePlayAndQuit(t *testing.T) {
	g := newTestGame(t, ID)
	require.True(t, g.Running())

	assert.True(t, g.HandleEvent(mouseOn(Coord{Col: 2, Row: 2})))
	assert.Equal(t, StateSelected, g.State())
	assert.True(t, g.HandleEvent(mouseOn(Coord{Col: 2, Row: 1})))
	assert.Equal(t, Player, g.Board().Occupant(Coord{Col: 2, Row: 1}))

	assert.True(t, g.HandleEvent(core.KeyPress{Rune: 'q'}))
	assert.False(t, g.Running())
	assert.Equal(t, StateTerminal, g.State())
}

func TestGameRenderStatusLine(t *testing.T) {
	g := newTestGame(t, ID)
	screen := core.NewScreen(testW, testH)

	require.NoError(t, g.Render(screen))
	assert.Contains(t, screen.String(), "click a piece")

	g.HandleEvent(mouseOn(Coord{Col: 1, Row: 2}))
	require.NoError(t, g.Render(screen))
	assert.Contains(t, screen.String(), "(1,2) · 1 move(s) · q quits")
}

func TestGameStatusLineFitsNarrowScreen(t *testing.T) {
	const w, h = MinScreenW, testH
	g := New(RuleForward, registry.Setup{})
	require.NoError(t, g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h}))
	screen := core.NewScreen(w, h)

	x, y := CellRect(BoardOrigin(w, h), 1, 2).Center()
	require.True(t, g.HandleEvent(core.MouseDown{X: x, Y: y}))
	require.NoError(t, g.Render(screen))

	want := "(1,2) · 1 move(s) · q quits"
	require.LessOrEqual(t, utf8.RuneCountInString(want), w)
	assert.Contains(t, screen.String(), want)
}

func TestGameStatusLineSkippedWhenWiderThanScreen(t *testing.T) {
	g := newTestGame(t, ID)
	screen := core.NewScreen(MinScreenW-5, testH)

	g.renderStatus(screen)
	assert.NotContains(t, screen.String(), "q quits")
	assert.NotContains(t, screen.String(), "click a")
}

func TestGameStatusLineSkippedAtMinimumSize(t *testing.T) {
	g := New(RuleForward, registry.Setup{})
	require.NoError(t, g.Reset(core.RuntimeConfig{ScreenW: MinScreenW, ScreenH: MinScreenH}))
	screen := core.NewScreen(MinScreenW, MinScreenH)

	require.NoError(t, g.Render(screen))
	assert.NotContains(t, screen.String(), "q quits")
}

func TestGameTooSmallAfterResize(t *testing.T) {
	g := newTestGame(t, ID)
	g.HandleEvent(mouseOn(Coord{Col: 1, Row: 2}))

	require.True(t, g.HandleEvent(core.Resize{Width: 20, Height: 8}))
	screen := core.NewScreen(20, 8)
	require.NoError(t, g.Render(screen))
	assert.True(t, strings.Contains(screen.String(), "Window too small"))

	// clicks are ignored while too small
	assert.False(t, g.HandleEvent(core.MouseDown{X: 1, Y: 1}))
	_, selected := g.Board().Selected()
	assert.True(t, selected)

	// growing back restores the board with its selection
	require.True(t, g.HandleEvent(core.Resize{Width: testW, Height: testH}))
	screen.Resize(testW, testH)
	require.NoError(t, g.Render(screen))
	assert.NotContains(t, screen.String(), "Window too small")
	assert.Equal(t, []Coord{{Col: 1, Row: 1}}, g.Board().Candidates())

	// quit still works
	assert.True(t, g.HandleEvent(core.KeyPress{Rune: 'q'}))
	assert.False(t, g.Running())
}
