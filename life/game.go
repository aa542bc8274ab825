// @focus: #gameplay { life }
package life

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/lifeterm/terminal"
)

// Screen chrome: cells are two columns wide, and three rows hold the
// separator line, status line and help line
const (
	CellWidth    = 2
	ReservedRows = 3
)

// ErrTooSmall is returned when the terminal cannot fit a single cell
var ErrTooSmall = errors.New("terminal too small")

// DimensionsFor derives grid size from terminal size
func DimensionsFor(termCols, termRows int) (rows, cols int, err error) {
	cols = termCols/CellWidth - 1
	rows = termRows - ReservedRows
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrTooSmall, termCols, termRows)
	}
	return rows, cols, nil
}

// Game is the Life engine: grids, cursor, run mode and step counters
// The engine is the only mutator of its grids; it is not safe for concurrent use
type Game struct {
	current *Grid
	next    *Grid
	saved   *Grid

	cx, cy int
	mode   Mode

	steps      int
	savedSteps int
}

// New creates an all-dead game with the cursor centered and the mode Paused
func New(rows, cols int) *Game {
	return &Game{
		current: NewGrid(rows, cols),
		next:    NewGrid(rows, cols),
		saved:   NewGrid(rows, cols),
		cx:      cols / 2,
		cy:      rows / 2,
		mode:    Paused,
	}
}

// Rows returns the grid height
func (g *Game) Rows() int { return g.current.rows }

// Cols returns the grid width
func (g *Game) Cols() int { return g.current.cols }

// Current returns the displayed generation
// Callers must not retain it across Step, which swaps buffers
func (g *Game) Current() *Grid { return g.current }

// Saved returns the snapshot grid
func (g *Game) Saved() *Grid { return g.saved }

// Cursor returns the edit position
func (g *Game) Cursor() (x, y int) { return g.cx, g.cy }

// Mode returns the run mode
func (g *Game) Mode() Mode { return g.mode }

// StepCount returns generations advanced since the last reset or load
func (g *Game) StepCount() int { return g.steps }

// SavedStepCount returns the step count captured by the last Save
func (g *Game) SavedStepCount() int { return g.savedSteps }

// Population counts live cells in the displayed generation
func (g *Game) Population() int { return g.current.Population() }

// Step computes the next generation into the scratch buffer, then swaps buffer roles
func (g *Game) Step() {
	cur, nxt := g.current, g.next
	for y := 0; y < cur.rows; y++ {
		row := y * cur.cols
		for x := 0; x < cur.cols; x++ {
			n := cur.LiveNeighbors(x, y)
			if n == 3 || (n == 2 && cur.cells[row+x] == Alive) {
				nxt.cells[row+x] = Alive
			} else {
				nxt.cells[row+x] = Dead
			}
		}
	}

	g.current, g.next = nxt, cur
	g.steps++

	if g.mode == StepOnce {
		g.mode = Paused
	}
}

// Advance runs one generation if the mode asks for it and reports whether it did
func (g *Game) Advance() bool {
	if g.mode != Continuous && g.mode != StepOnce {
		return false
	}
	g.Step()
	return true
}

// Save copies the displayed generation and step count into the snapshot
func (g *Game) Save() {
	g.saved.CopyFrom(g.current)
	g.savedSteps = g.steps
}

// Load restores the snapshot and pauses
func (g *Game) Load() {
	g.current.CopyFrom(g.saved)
	g.steps = g.savedSteps
	g.mode = Paused
}

// Reset kills every displayed cell, zeroes the step count and pauses
// The snapshot is left alone
func (g *Game) Reset() {
	g.current.Clear()
	g.steps = 0
	g.mode = Paused
}

// ToggleCell flips the cell under the cursor
func (g *Game) ToggleCell() bool {
	if !g.current.InBounds(g.cx, g.cy) {
		return false
	}
	g.current.Toggle(g.cx, g.cy)
	return true
}

// MoveCursor moves one cell, clamped to the grid; reports whether the cursor moved
func (g *Game) MoveCursor(d Direction) bool {
	switch d {
	case DirUp:
		if g.cy > 0 {
			g.cy--
			return true
		}
	case DirDown:
		if g.cy < g.current.rows-1 {
			g.cy++
			return true
		}
	case DirLeft:
		if g.cx > 0 {
			g.cx--
			return true
		}
	case DirRight:
		if g.cx < g.current.cols-1 {
			g.cx++
			return true
		}
	}
	return false
}

// ToggleRun switches between Continuous and Paused
// A pending StepOnce counts as not paused and becomes Paused
func (g *Game) ToggleRun() {
	if g.mode == Paused {
		g.mode = Continuous
	} else {
		g.mode = Paused
	}
}

// RequestStep schedules exactly one generation
func (g *Game) RequestStep() {
	g.mode = StepOnce
}

// Key bindings
const (
	KeyQuit       = terminal.KeyCtrlQ
	KeyReset      = terminal.KeyCtrlR
	KeySave       = terminal.KeyCtrlS
	KeyLoad       = terminal.KeyCtrlL
	KeyToggleRun  = terminal.KeyF5
	KeyStepOnce   = terminal.KeyF6
	ToggleCellKey = ' '
)

var moveKeys = map[terminal.Key]Direction{
	terminal.KeyUp:    DirUp,
	terminal.KeyDown:  DirDown,
	terminal.KeyLeft:  DirLeft,
	terminal.KeyRight: DirRight,
}

// Apply mutates state for one decoded key event
// Quit is reported, not performed; the caller owns terminal teardown
func (g *Game) Apply(ev terminal.Event) Outcome {
	if ev.IsRune(ToggleCellKey) {
		if g.ToggleCell() {
			return OutcomeToggled
		}
		return OutcomeNone
	}

	if ev.Modifiers != terminal.ModNone {
		return OutcomeNone
	}

	if d, ok := moveKeys[ev.Key]; ok {
		if g.MoveCursor(d) {
			return OutcomeMoved
		}
		return OutcomeNone
	}

	switch ev.Key {
	case KeyQuit:
		return OutcomeQuit
	case KeyReset:
		g.Reset()
		return OutcomeReset
	case KeySave:
		g.Save()
		return OutcomeSaved
	case KeyLoad:
		g.Load()
		return OutcomeLoaded
	case KeyToggleRun:
		g.ToggleRun()
		return OutcomeModeChanged
	case KeyStepOnce:
		g.RequestStep()
		return OutcomeModeChanged
	}
	return OutcomeNone
}
