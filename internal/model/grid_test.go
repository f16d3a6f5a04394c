package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type GridSuite struct {
	suite.Suite
	grid *Grid
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

func (s *GridSuite) SetupTest() {
	s.grid = NewGrid(3, 4)
}

func (s *GridSuite) TestNewGridIsEmpty() {
	rows, columns := s.grid.Dimensions()
	s.Equal(3, rows)
	s.Equal(4, columns)

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			s.True(s.grid.Get(row, col).IsEmpty())
		}
	}
	s.False(s.grid.Full())
}

func (s *GridSuite) TestNewGridRejectsZeroDimensions() {
	s.Panics(func() { NewGrid(0, 4) })
	s.Panics(func() { NewGrid(3, 0) })
}

func (s *GridSuite) TestSetThenGet() {
	s.grid.Set(2, 3, OccupiedBy(1))

	team, ok := s.grid.Get(2, 3).Team()
	s.True(ok)
	s.Equal(Team(1), team)

	// Neighbours in the flat layout are untouched
	s.True(s.grid.Get(2, 2).IsEmpty())
	s.True(s.grid.Get(1, 3).IsEmpty())
}

func (s *GridSuite) TestOutOfRangeAccessPanics() {
	s.Panics(func() { s.grid.Get(3, 0) })
	s.Panics(func() { s.grid.Get(0, 4) })
	s.Panics(func() { s.grid.Set(-1, 0, OccupiedBy(0)) })
}

func (s *GridSuite) TestInBounds() {
	s.True(s.grid.InBounds(0, 0))
	s.True(s.grid.InBounds(2, 3))
	s.False(s.grid.InBounds(3, 0))
	s.False(s.grid.InBounds(0, -1))
}

func (s *GridSuite) TestColumnValuesBottomUp() {
	s.grid.Set(0, 1, OccupiedBy(0))
	s.grid.Set(1, 1, OccupiedBy(1))

	var rows []int
	var cells []Cell
	for row, cell := range s.grid.ColumnValues(1) {
		rows = append(rows, row)
		cells = append(cells, cell)
	}

	s.Equal([]int{0, 1, 2}, rows)
	s.True(cells[0].Is(0))
	s.True(cells[1].Is(1))
	s.True(cells[2].IsEmpty())
}

func (s *GridSuite) TestColumnValuesIsRestartable() {
	s.grid.Set(0, 0, OccupiedBy(0))
	seq := s.grid.ColumnValues(0)

	for range 2 {
		count := 0
		for _, cell := range seq {
			if cell.IsEmpty() {
				break
			}
			count++
		}
		s.Equal(1, count)
	}
}

func (s *GridSuite) TestFull() {
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			s.grid.Set(row, col, OccupiedBy(0))
		}
	}
	s.True(s.grid.Full())
}

func TestCellMarkers(t *testing.T) {
	assert.Equal(t, '_', EmptyCell().Marker())
	assert.Equal(t, '0', OccupiedBy(0).Marker())
	assert.Equal(t, 'a', OccupiedBy(10).Marker())
	assert.Equal(t, 'f', OccupiedBy(15).Marker())
	assert.Equal(t, '?', OccupiedBy(MaxTeams).Marker())
	assert.Equal(t, "Team 3", Team(3).String())
	assert.False(t, EmptyCell().Is(0))
}
