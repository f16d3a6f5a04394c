package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectn/internal/model"
)

// MoveError reports which scripted move was rejected
type MoveError struct {
	Move   int // 1-based position in the script
	Team   model.Team
	Column int
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %d (%s, column %d) rejected: %s", e.Move, e.Team, e.Column, Reason(e.Err))
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

func newMovesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moves [column...]",
		Short: "Play a scripted list of columns and print the result",
		Long: `Play each column in order for whichever team's turn it is, then print the
final board and result. Stops with an error at the first rejected move,
including any move made after the game has been won.`,
		Example: `  connectn moves 0 1 0 1 0 1 0
  connectn moves --teams 3 --run-length 3 -o json 0 0 0 1 1 1 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			columns := make([]int, len(args))
			for i, arg := range args {
				col, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid column %q", arg)
				}
				columns[i] = col
			}

			m, err := app.MatchController.Start(cfg.Params())
			if err != nil {
				return fmt.Errorf("invalid game parameters: %w", err)
			}

			for i, col := range columns {
				team := m.State.CurrentTurn()
				if _, err := app.MatchController.Drop(m, team, col); err != nil {
					return &MoveError{Move: i + 1, Team: team, Column: col, Err: err}
				}
			}

			out.Print(NewResult(m))
			return nil
		},
	}

	bindGameFlags(cmd.Flags(), cfg)

	return cmd
}
