package life

// Cell is the state of one grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Grid is a fixed-size 2D cell array stored row-major: cells[y*cols + x]
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates an all-dead grid
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the grid height
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (x, y) lies on the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the cell at (x, y); out-of-bounds positions read as Dead
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Dead
	}
	return g.cells[y*g.cols+x]
}

// Alive reports whether the cell at (x, y) is alive
func (g *Grid) Alive(x, y int) bool {
	return g.At(x, y) == Alive
}

// Set writes the cell at (x, y); out-of-bounds writes are ignored
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.cols+x] = c
}

// Toggle flips the cell at (x, y) between Alive and Dead
func (g *Grid) Toggle(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	idx := y*g.cols + x
	if g.cells[idx] == Alive {
		g.cells[idx] = Dead
	} else {
		g.cells[idx] = Alive
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

// CopyFrom overwrites every cell with the contents of src
// Both grids must have identical dimensions
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.cells, src.cells)
}

// Equal reports whether two grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Population counts live cells
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// LiveNeighbors counts live cells among the up to 8 positions surrounding (x, y)
// Positions outside the grid are absent, not wrapped
func (g *Grid) LiveNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.rows {
			continue
		}
		row := ny * g.cols
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.cols {
				continue
			}
			if g.cells[row+nx] == Alive {
				count++
			}
		}
	}
	return count
}
