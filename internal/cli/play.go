package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectn/internal/model"
	"github.com/mcoot/connectn/internal/services/match"
)

func newPlayCmd() *cobra.Command {
	var skipSetup bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game in the terminal",
		Long: `Play a game with every team sharing the same terminal.

Unless --skip-setup is given you are first asked whether to use the default
setup (taken from flags, environment and built-in defaults) or to enter the
number of teams, grid size, run length and first team by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := &shell{
				controller: app.MatchController,
				prompter:   NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				renderer:   out.renderer,
				output:     out,
				out:        cmd.OutOrStdout(),
				defaults:   cfg.Params(),
				skipSetup:  skipSetup,
			}
			return sh.run()
		},
	}

	bindGameFlags(cmd.Flags(), cfg)
	cmd.Flags().BoolVar(&skipSetup, "skip-setup", false, "Start straight away with the configured parameters")

	return cmd
}

// shell is the interactive game loop
type shell struct {
	controller *match.Controller
	prompter   *Prompter
	renderer   *Renderer
	output     *Output
	out        io.Writer
	defaults   match.Params
	skipSetup  bool
}

func (sh *shell) run() error {
	m, err := sh.setup()
	if err != nil {
		return err
	}

	for !m.Finished() {
		if err := sh.playTurn(m); err != nil {
			return err
		}
	}

	sh.renderer.ClearScreen(sh.out)
	sh.output.Print(NewResult(m))
	return nil
}

// setup collects parameters until they describe a valid game
func (sh *shell) setup() (*match.Match, error) {
	if sh.skipSetup {
		return sh.controller.Start(sh.defaults)
	}

	sh.renderer.ClearScreen(sh.out)
	for {
		params, err := sh.askParams()
		if err != nil {
			return nil, err
		}

		m, err := sh.controller.Start(params)
		if err == nil {
			return m, nil
		}
		fmt.Fprintln(sh.out, "Invalid game parameters, try again.")
	}
}

func (sh *shell) askParams() (match.Params, error) {
	fmt.Fprintln(sh.out, "Use default setup?")
	useDefaults, err := sh.prompter.YesNo("whether to use the default setup")
	if err != nil || useDefaults {
		return sh.defaults, err
	}

	params := match.Params{}
	if params.Teams, err = sh.prompter.IntInRange("the number of teams", 1, model.MaxTeams+1); err != nil {
		return params, err
	}
	if params.Rows, err = sh.prompter.Int("the number of rows"); err != nil {
		return params, err
	}
	if params.Columns, err = sh.prompter.Int("the number of columns"); err != nil {
		return params, err
	}
	if params.RunLength, err = sh.prompter.Int("the number in a row to win"); err != nil {
		return params, err
	}
	if params.FirstTurn, err = sh.prompter.IntInRange("the team to go first", 0, params.Teams); err != nil {
		return params, err
	}
	return params, nil
}

// playTurn keeps asking the current team for a column until a drop succeeds
func (sh *shell) playTurn(m *match.Match) error {
	sh.renderer.ClearScreen(sh.out)
	fmt.Fprintln(sh.out, sh.renderer.Board(m.State))
	fmt.Fprintln(sh.out)

	team := m.State.CurrentTurn()
	fmt.Fprintf(sh.out, "%s's turn:\n", team)

	for {
		column, err := sh.prompter.IntInRange("the column to drop tile in", 0, m.State.Columns())
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				return fmt.Errorf("game abandoned on %s's turn: %w", team, err)
			}
			return err
		}

		if _, err := sh.controller.Drop(m, team, column); err != nil {
			fmt.Fprintf(sh.out, "That was an invalid move because %s, try again.\n", Reason(err))
			continue
		}
		return nil
	}
}
