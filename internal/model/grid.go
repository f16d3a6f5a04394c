package model

import (
	"fmt"
	"iter"
)

// Grid is a fixed-size store of cells.
// Cells are stored row-major: index = row*columns + column. Row 0 is the bottom row.
type Grid struct {
	rows    int
	columns int
	cells   []Cell
}

// NewGrid creates a grid with every cell empty.
// Callers must pass positive dimensions.
func NewGrid(rows, columns int) *Grid {
	if rows <= 0 || columns <= 0 {
		panic(fmt.Sprintf("model: invalid grid dimensions %dx%d", rows, columns))
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}
}

// Dimensions returns the number of rows and columns
func (g *Grid) Dimensions() (rows, columns int) {
	return g.rows, g.columns
}

// InBounds returns true if the position is within the grid
func (g *Grid) InBounds(row, column int) bool {
	return row >= 0 && row < g.rows && column >= 0 && column < g.columns
}

// Get returns the cell at the given position
func (g *Grid) Get(row, column int) Cell {
	return g.cells[g.index(row, column)]
}

// Set replaces the cell at the given position
func (g *Grid) Set(row, column int, cell Cell) {
	g.cells[g.index(row, column)] = cell
}

// ColumnValues yields the cells of a column from row 0 upward, with their row index
func (g *Grid) ColumnValues(column int) iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for row := 0; row < g.rows; row++ {
			if !yield(row, g.Get(row, column)) {
				return
			}
		}
	}
}

// Full returns true if every cell is occupied
func (g *Grid) Full() bool {
	for _, cell := range g.cells {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

func (g *Grid) index(row, column int) int {
	if !g.InBounds(row, column) {
		panic(fmt.Sprintf("model: position (%d, %d) outside %dx%d grid", row, column, g.rows, g.columns))
	}
	return row*g.columns + column
}
