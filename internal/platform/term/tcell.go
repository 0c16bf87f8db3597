package term

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-checkers/internal/core"
)

// TcellDriver is a Driver backed by a tcell screen.
type TcellDriver struct {
	screen  tcell.Screen
	events  chan tcell.Event
	done    chan struct{}    // Closed by Close
	buttons tcell.ButtonMask // Buttons held at the last mouse event
	once    sync.Once
}

// OpenTcell initializes the real terminal.
func OpenTcell() (*TcellDriver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	return NewTcellDriver(screen)
}

// NewTcellDriver initializes screen with mouse reporting on and the cursor hidden.
func NewTcellDriver(screen tcell.Screen) (*TcellDriver, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: cannot init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	d := &TcellDriver{
		screen: screen,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	go d.pump()
	return d, nil
}

// pump forwards tcell events until the screen is finalized or the driver is closed.
func (d *TcellDriver) pump() {
	defer close(d.events)
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
		case <-d.done:
			return
		}
	}
}

// Size returns the screen size in cells.
func (d *TcellDriver) Size() (int, int) {
	return d.screen.Size()
}

// Poll waits for the next event the game understands.
func (d *TcellDriver) Poll(ctx context.Context, timeout time.Duration) (core.Event, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
			return nil, nil
		case ev, ok := <-d.events:
			if !ok {
				return nil, ErrClosed
			}
			if out := d.translate(ev); out != nil {
				return out, nil
			}
		}
	}
}

// translate maps a tcell event to a game event, or nil when irrelevant.
// Only the press edge of the primary button counts as a click.
func (d *TcellDriver) translate(ev tcell.Event) core.Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		prev := d.buttons
		d.buttons = ev.Buttons()
		if d.buttons&tcell.Button1 == 0 || prev&tcell.Button1 != 0 {
			return nil
		}
		x, y := ev.Position()
		return core.MouseDown{X: x, Y: y}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			return core.KeyPress{Rune: ev.Rune()}
		case tcell.KeyCtrlC:
			// Raw mode swallows SIGINT.
			return core.KeyPress{Rune: core.QuitKey}
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		return core.Resize{Width: w, Height: h}
	}
	return nil
}

// Present paints frame and shows it in one flush.
func (d *TcellDriver) Present(frame *core.Screen) error {
	sw, sh := d.screen.Size()
	w := core.Min(sw, frame.Width())
	h := core.Min(sh, frame.Height())

	d.screen.Clear()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := frame.GetCell(x, y)
			style := tcell.StyleDefault.Background(tcellColor(cell.Bg))
			d.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	d.screen.Show()
	return nil
}

// Close restores the terminal. It is safe to call more than once.
func (d *TcellDriver) Close() error {
	d.once.Do(func() {
		if d.done != nil {
			close(d.done)
		}
		d.screen.Fini()
	})
	return nil
}

func tcellColor(c core.Color) tcell.Color {
	idx := c.ANSI()
	if idx < 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(idx)
}
