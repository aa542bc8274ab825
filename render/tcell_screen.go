// @focus: #render { tcell }
package render

import (
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lifeterm/core"
	"github.com/lixenwraith/lifeterm/life"
	"github.com/lixenwraith/lifeterm/terminal"
)

// ReadTimeout bounds one ReadKey wait, matching the raw terminal's VTIME
const ReadTimeout = 100 * time.Millisecond

// ErrScreenClosed is returned by ReadKey after the event source stopped
var ErrScreenClosed = errors.New("screen closed")

var (
	styleDead   = tcell.StyleDefault
	styleAlive  = tcell.StyleDefault.Reverse(true).Foreground(tcell.ColorYellow)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// TcellScreen draws the same layout as the ANSI backend through tcell
type TcellScreen struct {
	screen  tcell.Screen
	events  chan tcell.Event
	quit    chan struct{}
	timeout time.Duration
	once    sync.Once
}

// NewTcellScreen opens the controlling terminal through tcell
func NewTcellScreen() (*TcellScreen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return WrapTcell(s)
}

// WrapTcell initializes s and starts pumping its events
func WrapTcell(s tcell.Screen) (*TcellScreen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	ts := &TcellScreen{
		screen:  s,
		events:  make(chan tcell.Event, 16),
		quit:    make(chan struct{}),
		timeout: ReadTimeout,
	}
	core.Go(ts.pump)
	return ts, nil
}

// pump forwards tcell events until Fini makes PollEvent return nil
func (ts *TcellScreen) pump() {
	defer close(ts.events)
	for {
		ev := ts.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case ts.events <- ev:
		case <-ts.quit:
			return
		}
	}
}

// Size returns the screen geometry
func (ts *TcellScreen) Size() (cols, rows int, err error) {
	cols, rows = ts.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0, terminal.ErrGeometry
	}
	return cols, rows, nil
}

// ReadKey waits up to the read timeout for one key event
// Resize and other non-key events read as no event
func (ts *TcellScreen) ReadKey() (terminal.Event, error) {
	timer := time.NewTimer(ts.timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-ts.events:
		if !ok {
			return terminal.Event{}, ErrScreenClosed
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return TranslateKey(ev.Key(), ev.Rune(), ev.Modifiers()), nil
		case *tcell.EventResize:
			ts.screen.Sync()
		}
		return terminal.Event{Key: terminal.KeyNone}, nil
	case <-timer.C:
		return terminal.Event{Key: terminal.KeyNone}, nil
	}
}

// Present draws v and shows it
func (ts *TcellScreen) Present(v View) error {
	s := ts.screen
	s.Clear()

	g := v.Grid
	width := v.Width()
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			style := styleDead
			if g.Alive(x, y) {
				style = styleAlive
			}
			s.SetContent(x*life.CellWidth, y, ' ', nil, style)
			s.SetContent(x*life.CellWidth+1, y, ' ', nil, style)
		}
		s.SetContent(width-1, y, boundary, nil, styleDead)
	}

	sep := g.Rows()
	for x := 0; x < width-1; x++ {
		s.SetContent(x, sep, '=', nil, styleDead)
	}
	s.SetContent(width-1, sep, boundary, nil, styleDead)

	drawText(s, 0, sep+1, v.StatusText(), styleStatus)
	drawText(s, 0, sep+2, v.HelpLine(), styleDead)

	// ANSI column (cx+1)*2 is 1-based; tcell is 0-based
	s.ShowCursor((v.CursorX+1)*life.CellWidth-1, v.CursorY)
	s.Show()
	return nil
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// Close stops the event pump and releases the terminal
func (ts *TcellScreen) Close() error {
	ts.once.Do(func() {
		close(ts.quit)
		ts.screen.Fini()
	})
	return nil
}

// Restore implements core.Restorer for the crash path
func (ts *TcellScreen) Restore() error {
	return ts.Close()
}
