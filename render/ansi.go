package render

import (
	"github.com/lixenwraith/lifeterm/life"
	"github.com/lixenwraith/lifeterm/terminal"
)

const (
	deadCell     = "  "
	boundary     = '|'
	separatorRun = "=="
)

// ComposeANSI appends one full frame for v to f
// The frame is self-contained: cursor hidden, home, grid, separator, status,
// help, then the cursor placed on (cx, cy) and shown again
func ComposeANSI(v View, f *terminal.Frame) {
	f.HideCursor()
	f.Home()

	g := v.Grid
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if g.Alive(x, y) {
				f.Highlight()
				f.WriteString(deadCell)
				f.StyleOff()
			} else {
				f.WriteString(deadCell)
			}
		}
		f.WriteByte(boundary)
		f.ClearLine()
		f.LineBreak()
	}

	for x := 0; x < g.Cols(); x++ {
		f.WriteString(separatorRun)
	}
	f.WriteByte(boundary)
	f.ClearLine()
	f.LineBreak()

	f.Inverse()
	f.WriteString(v.StatusText())
	f.ClearLine()
	f.LineBreak()

	f.WriteString(v.HelpLine())
	f.ClearLine()
	f.StyleOff()

	f.MoveCursor(v.CursorY+1, (v.CursorX+1)*life.CellWidth)
	f.ShowCursor()
}

// ANSIScreen presents frames on a raw terminal
type ANSIScreen struct {
	term  *terminal.Terminal
	frame *terminal.Frame
}

// NewANSIScreen wraps an opened terminal
func NewANSIScreen(t *terminal.Terminal) *ANSIScreen {
	return &ANSIScreen{term: t, frame: terminal.NewFrame(4096)}
}

// Size returns the terminal geometry
func (s *ANSIScreen) Size() (cols, rows int, err error) {
	return s.term.Size()
}

// ReadKey blocks up to the raw-mode read timeout for one key
func (s *ANSIScreen) ReadKey() (terminal.Event, error) {
	return s.term.ReadKey()
}

// Present composes and flushes one frame in a single write
func (s *ANSIScreen) Present(v View) error {
	s.frame.Reset()
	ComposeANSI(v, s.frame)
	return s.term.Flush(s.frame)
}

// Close clears the screen and restores the terminal
func (s *ANSIScreen) Close() error {
	return s.term.Close()
}
