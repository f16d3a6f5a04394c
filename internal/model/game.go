package model

// Default game parameters
const (
	DefaultFirstTurn Team = 0
	DefaultNumTeams       = 2
	DefaultNumRows        = 6
	DefaultNumColumns     = 7
	DefaultRunLength      = 4
)

// GameState is a single gravity-drop game.
// It is not safe for concurrent use.
type GameState struct {
	grid      *Grid
	curTurn   Team
	numTeams  int
	runLength int
}

// New creates a game with an empty grid of the given shape
func New(firstTurn Team, numTeams, numRows, numColumns, runLength int) (*GameState, error) {
	if firstTurn < 0 || int(firstTurn) >= numTeams {
		return nil, ErrInvalidTeam
	}
	if numTeams > MaxTeams {
		return nil, ErrTooManyTeams
	}
	if numRows < 1 || numColumns < 1 || numRows > MaxCells/numColumns {
		return nil, ErrInvalidDimensions
	}
	if runLength < 1 {
		return nil, ErrInvalidRunLength
	}

	return &GameState{
		grid:      NewGrid(numRows, numColumns),
		curTurn:   firstTurn,
		numTeams:  numTeams,
		runLength: runLength,
	}, nil
}

// NewDefault creates a two-team 6x7 game needing four in a row, team 0 first
func NewDefault() *GameState {
	return &GameState{
		grid:      NewGrid(DefaultNumRows, DefaultNumColumns),
		curTurn:   DefaultFirstTurn,
		numTeams:  DefaultNumTeams,
		runLength: DefaultRunLength,
	}
}

// CurrentTurn returns the team allowed to move next
func (g *GameState) CurrentTurn() Team {
	return g.curTurn
}

// NumTeams returns the number of teams in the turn cycle
func (g *GameState) NumTeams() int {
	return g.numTeams
}

// Rows returns the number of grid rows
func (g *GameState) Rows() int {
	rows, _ := g.grid.Dimensions()
	return rows
}

// Columns returns the number of grid columns
func (g *GameState) Columns() int {
	_, columns := g.grid.Dimensions()
	return columns
}

// RunLength returns the number of contiguous tokens needed to win
func (g *GameState) RunLength() int {
	return g.runLength
}

// Cell returns the cell at the given position, or false if it is outside the grid
func (g *GameState) Cell(row, column int) (Cell, bool) {
	if !g.grid.InBounds(row, column) {
		return Cell{}, false
	}
	return g.grid.Get(row, column), true
}

// DropChip drops a token for team into column.
// A failed drop leaves the game untouched.
func (g *GameState) DropChip(team Team, column int) error {
	_, err := g.DropChipAt(team, column)
	return err
}

// DropChipAt is DropChip, also returning the row the token landed in
func (g *GameState) DropChipAt(team Team, column int) (int, error) {
	if g.GameOver() {
		return 0, ErrGameOver
	}
	if team != g.curTurn {
		return 0, ErrNotThatTeamsTurn
	}
	if column < 0 || column >= g.Columns() {
		return 0, ErrOutOfBounds
	}

	row, err := g.lowestEmptyRow(column)
	if err != nil {
		return 0, err
	}

	g.grid.Set(row, column, OccupiedBy(team))
	g.curTurn = Team((int(g.curTurn) + 1) % g.numTeams)
	return row, nil
}

// Full returns true if no empty cell remains
func (g *GameState) Full() bool {
	return g.grid.Full()
}

// Draw returns true if the grid is full and nobody has won
func (g *GameState) Draw() bool {
	return g.Full() && !g.GameOver()
}

// ToDisplayRows renders each row as a string of markers, bottom row first
func (g *GameState) ToDisplayRows() []string {
	rows, columns := g.grid.Dimensions()
	result := make([]string, rows)
	line := make([]rune, columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			line[col] = g.grid.Get(row, col).Marker()
		}
		result[row] = string(line)
	}
	return result
}

func (g *GameState) lowestEmptyRow(column int) (int, error) {
	for row, cell := range g.grid.ColumnValues(column) {
		if cell.IsEmpty() {
			return row, nil
		}
	}
	return 0, ErrColumnFull
}
