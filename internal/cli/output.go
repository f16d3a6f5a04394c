package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/mcoot/connectn/internal/services/match"
)

// Output handles formatting output based on the configured format
type Output struct {
	format   string
	out      io.Writer
	errOut   io.Writer
	renderer *Renderer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer, renderer *Renderer) *Output {
	return &Output{
		format:   format,
		out:      out,
		errOut:   errOut,
		renderer: renderer,
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Result:
		o.printResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Result is the final state of a match
type Result struct {
	MatchID     string   `json:"match_id"`
	Teams       int      `json:"teams"`
	Rows        int      `json:"rows"`
	Columns     int      `json:"columns"`
	RunLength   int      `json:"run_length"`
	CurrentTurn int      `json:"current_turn"`
	Moves       int      `json:"moves"`
	Board       []string `json:"board"` // Top row first
	Outcome     string   `json:"outcome"`
	GameOver    bool     `json:"game_over"`
	Draw        bool     `json:"draw"`
	Winner      *int     `json:"winner"`
	WinningRun  *RunView `json:"winning_run,omitempty"`

	match *match.Match
}

// RunView is a winning run as [row, column] pairs
type RunView struct {
	Axis  string   `json:"axis"`
	Cells [][2]int `json:"cells"`
}

// NewResult summarises a match
func NewResult(m *match.Match) Result {
	state := m.State
	board := state.ToDisplayRows()
	slices.Reverse(board)

	result := Result{
		MatchID:     m.ID,
		Teams:       state.NumTeams(),
		Rows:        state.Rows(),
		Columns:     state.Columns(),
		RunLength:   state.RunLength(),
		CurrentTurn: int(state.CurrentTurn()),
		Moves:       m.Moves,
		Board:       board,
		Outcome:     string(m.Outcome()),
		GameOver:    state.GameOver(),
		Draw:        state.Draw(),
		match:       m,
	}

	if winner, ok := state.WhoWon(); ok {
		w := int(winner)
		result.Winner = &w
		if run, ok := state.WinningRun(winner); ok {
			result.WinningRun = &RunView{Axis: run.Axis.String(), Cells: run.Cells()}
		}
	}

	return result
}

func (o *Output) printResult(r Result) {
	if r.match != nil {
		fmt.Fprintln(o.out, o.renderer.Board(r.match.State))
		fmt.Fprintln(o.out)
	}

	switch {
	case r.Winner != nil:
		fmt.Fprintf(o.out, "Team %d wins!\n", *r.Winner)
		if r.WinningRun != nil {
			fmt.Fprintf(o.out, "Winning run: %s from row %d, column %d\n",
				r.WinningRun.Axis, r.WinningRun.Cells[0][0], r.WinningRun.Cells[0][1])
		}
	case r.Draw:
		fmt.Fprintln(o.out, "It's a draw!")
	default:
		fmt.Fprintf(o.out, "Team %d's turn\n", r.CurrentTurn)
	}
	fmt.Fprintf(o.out, "Moves: %d\n", r.Moves)
}
