package render

import (
	"strconv"

	"github.com/lixenwraith/lifeterm/life"
)

// HelpText is the instruction line under the status bar
const HelpText = "Space: Draw/Erase | Ctrl-Q: Quit | Ctrl-R: Reset | Ctrl-S/L : Save/Load State | F5: Run/Pause | F6: Step"

// View is a read-only snapshot of engine state for one frame
type View struct {
	Grid       *life.Grid
	CursorX    int
	CursorY    int
	Steps      int
	Mode       life.Mode
	Population int
}

// Snapshot captures the engine state to draw
// Grid aliases the engine's current buffer and is only valid until the next Step
func Snapshot(g *life.Game) View {
	x, y := g.Cursor()
	return View{
		Grid:       g.Current(),
		CursorX:    x,
		CursorY:    y,
		Steps:      g.StepCount(),
		Mode:       g.Mode(),
		Population: g.Population(),
	}
}

// Width is the on-screen row width: two columns per cell plus the boundary marker
func (v View) Width() int {
	return v.Grid.Cols()*life.CellWidth + 1
}

// StatusText is the status bar content
func (v View) StatusText() string {
	return "Step Count: " + strconv.Itoa(v.Steps) + " | Game Mode: " + v.Mode.Label()
}

// HelpLine returns the help text cut to the row width
func (v View) HelpLine() string {
	if w := v.Width(); len(HelpText) > w {
		return HelpText[:w]
	}
	return HelpText
}
