package model

// Axis is one of the four directions a winning run can lie along
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
	AxisAscending  // row and column both increasing
	AxisDescending // row increasing, column decreasing
)

// Axes lists every axis in the order they are checked
var Axes = [...]Axis{AxisVertical, AxisHorizontal, AxisAscending, AxisDescending}

// String returns the name of the axis
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	case AxisAscending:
		return "ascending"
	case AxisDescending:
		return "descending"
	default:
		return "unknown"
	}
}

// step returns the (row, column) offset between consecutive cells on the axis,
// or false for a value outside Axes
func (a Axis) step() (dRow, dCol int, ok bool) {
	switch a {
	case AxisVertical:
		return 1, 0, true
	case AxisHorizontal:
		return 0, 1, true
	case AxisAscending:
		return 1, 1, true
	case AxisDescending:
		return 1, -1, true
	default:
		return 0, 0, false
	}
}

// Run is a window of RunLength cells, starting at (Row, Column) and following Axis
type Run struct {
	Axis   Axis
	Row    int
	Column int
	Length int
}

// Cells returns the positions covered by the run, in order
func (r Run) Cells() [][2]int {
	dRow, dCol, _ := r.Axis.step()
	cells := make([][2]int, r.Length)
	for i := range cells {
		cells[i] = [2]int{r.Row + i*dRow, r.Column + i*dCol}
	}
	return cells
}

// HasWon returns true if team has a full run along any axis.
// The grid is rescanned on every call.
func (g *GameState) HasWon(team Team) bool {
	_, ok := g.WinningRun(team)
	return ok
}

// HasWonAlong returns true if team has a full run along the given axis
func (g *GameState) HasWonAlong(team Team, axis Axis) bool {
	_, ok := g.winningRunAlong(team, axis)
	return ok
}

// WinningRun returns the first full run found for team
func (g *GameState) WinningRun(team Team) (Run, bool) {
	for _, axis := range Axes {
		if run, ok := g.winningRunAlong(team, axis); ok {
			return run, true
		}
	}
	return Run{}, false
}

// GameOver returns true once any team has won
func (g *GameState) GameOver() bool {
	_, ok := g.WhoWon()
	return ok
}

// WhoWon returns the lowest-indexed team that has won, or false if none has
func (g *GameState) WhoWon() (Team, bool) {
	for t := 0; t < g.numTeams; t++ {
		if g.HasWon(Team(t)) {
			return Team(t), true
		}
	}
	return 0, false
}

// winningRunAlong checks every window start whose run stays inside the grid
func (g *GameState) winningRunAlong(team Team, axis Axis) (Run, bool) {
	rows, columns := g.grid.Dimensions()
	dRow, dCol, ok := axis.step()
	if !ok {
		return Run{}, false
	}
	span := g.runLength - 1

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			if !g.grid.InBounds(row+span*dRow, col+span*dCol) {
				continue
			}
			if g.windowHeldBy(team, row, col, dRow, dCol) {
				return Run{Axis: axis, Row: row, Column: col, Length: g.runLength}, true
			}
		}
	}
	return Run{}, false
}

func (g *GameState) windowHeldBy(team Team, row, col, dRow, dCol int) bool {
	for i := 0; i < g.runLength; i++ {
		if !g.grid.Get(row+i*dRow, col+i*dCol).Is(team) {
			return false
		}
	}
	return true
}
