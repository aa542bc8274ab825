// Package life implements the Game of Life state machine behind the terminal UI.
//
// A Game owns three equally sized grids: the displayed generation, a scratch
// buffer the next generation is computed into, and an independent saved
// snapshot. Edges are hard walls; cells beyond them count as dead.
package life
