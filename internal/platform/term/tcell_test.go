package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-checkers/internal/core"
)

func newSimDriver(t *testing.T, w, h int) (*TcellDriver, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	d, err := NewTcellDriver(sim)
	require.NoError(t, err)
	sim.SetSize(w, h)
	t.Cleanup(func() { d.Close() })
	return d, sim
}

func TestTranslateMousePressEdge(t *testing.T) {
	d := &TcellDriver{}

	press := d.translate(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	assert.Equal(t, core.MouseDown{X: 3, Y: 4}, press)

	// Dragging with the button held is not a new click.
	assert.Nil(t, d.translate(tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone)))

	assert.Nil(t, d.translate(tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModNone)))
	assert.Equal(t, core.MouseDown{X: 6, Y: 1},
		d.translate(tcell.NewEventMouse(6, 1, tcell.Button1, tcell.ModNone)))
}

func TestTranslateIgnoresOtherButtons(t *testing.T) {
	d := &TcellDriver{}
	assert.Nil(t, d.translate(tcell.NewEventMouse(1, 1, tcell.Button2, tcell.ModNone)))
	assert.Nil(t, d.translate(tcell.NewEventMouse(1, 1, tcell.WheelUp, tcell.ModNone)))
}

func TestTranslateKeys(t *testing.T) {
	d := &TcellDriver{}

	assert.Equal(t, core.KeyPress{Rune: 'q'},
		d.translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.Equal(t, core.KeyPress{Rune: core.QuitKey},
		d.translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.Nil(t, d.translate(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
}

func TestTranslateResize(t *testing.T) {
	d := &TcellDriver{}
	assert.Equal(t, core.Resize{Width: 100, Height: 40},
		d.translate(tcell.NewEventResize(100, 40)))
}

func TestPresentPaintsBackground(t *testing.T) {
	d, sim := newSimDriver(t, 10, 4)

	frame := core.NewScreen(10, 4)
	require.NoError(t, frame.Paint(2, 1, 'x', core.ColorBlue))
	require.NoError(t, d.Present(frame))

	cells, w, h := sim.GetContents()
	require.Equal(t, 10, w)
	require.Equal(t, 4, h)

	cell := cells[1*w+2]
	require.NotEmpty(t, cell.Runes)
	assert.Equal(t, 'x', cell.Runes[0])
	_, bg, _ := cell.Style.Decompose()
	assert.Equal(t, tcell.PaletteColor(core.ColorBlue.ANSI()), bg)

	_, bg, _ = cells[0].Style.Decompose()
	assert.Equal(t, tcell.ColorDefault, bg)
}

func TestPollTimesOut(t *testing.T) {
	d := &TcellDriver{events: make(chan tcell.Event)}

	ev, err := d.Poll(context.Background(), 5*time.Millisecond)
	assert.NoError(t, err)
	assert.Nil(t, ev)
}

func TestPollSkipsIrrelevantEvents(t *testing.T) {
	d := &TcellDriver{events: make(chan tcell.Event, 2)}
	d.events <- tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	d.events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	ev, err := d.Poll(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, core.KeyPress{Rune: 'q'}, ev)
}

func TestPollClosed(t *testing.T) {
	d := &TcellDriver{events: make(chan tcell.Event)}
	close(d.events)

	_, err := d.Poll(context.Background(), time.Second)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestPollCancelled(t *testing.T) {
	d := &TcellDriver{events: make(chan tcell.Event)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Poll(ctx, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPumpStopsWhenClosedWithNoReader(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	require.NoError(t, sim.Init())
	t.Cleanup(sim.Fini)

	d := &TcellDriver{
		screen: sim,
		events: make(chan tcell.Event),
		done:   make(chan struct{}),
	}
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	stopped := make(chan struct{})
	go func() {
		d.pump()
		close(stopped)
	}()

	// Nobody reads events, so the pump is stuck delivering the key.
	close(d.done)

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("pump did not stop after done was closed")
	}
	_, open := <-d.events
	assert.False(t, open, "events must be closed when the pump exits")
}
