package match

import (
	"log/slog"
	"time"

	"github.com/mcoot/connectn/internal/dependencies/clock"
	"github.com/mcoot/connectn/internal/dependencies/random"
	"github.com/mcoot/connectn/internal/model"
)

const (
	idLength   = 8
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Outcome describes how far a match has progressed
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeDraw       Outcome = "draw"
)

// Params are the parameters a match is started with
type Params struct {
	Teams     int
	Rows      int
	Columns   int
	RunLength int
	FirstTurn int
	// RandomFirst ignores FirstTurn and draws the first team at random
	RandomFirst bool
}

// DefaultParams returns the classic two-team 6x7 four-in-a-row setup
func DefaultParams() Params {
	return Params{
		Teams:     model.DefaultNumTeams,
		Rows:      model.DefaultNumRows,
		Columns:   model.DefaultNumColumns,
		RunLength: model.DefaultRunLength,
		FirstTurn: int(model.DefaultFirstTurn),
	}
}

// Match is one game owned by a Controller
type Match struct {
	ID         string
	State      *model.GameState
	Moves      int
	StartedAt  time.Time
	FinishedAt time.Time // Zero until the match is won or drawn
}

// Outcome reports whether the match is still running, won or drawn
func (m *Match) Outcome() Outcome {
	switch {
	case m.State.GameOver():
		return OutcomeWon
	case m.State.Draw():
		return OutcomeDraw
	default:
		return OutcomeInProgress
	}
}

// Finished returns true once the match is won or drawn
func (m *Match) Finished() bool {
	return m.Outcome() != OutcomeInProgress
}

// Winner returns the winning team, if any
func (m *Match) Winner() (model.Team, bool) {
	return m.State.WhoWon()
}

// Controller starts matches and applies moves to them
type Controller struct {
	clock  clock.Clock
	random random.Random
	logger *slog.Logger
}

// NewController creates a new match Controller
func NewController(clock clock.Clock, random random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		clock:  clock,
		random: random,
		logger: logger,
	}
}

// Start creates a match with an empty grid
func (c *Controller) Start(params Params) (*Match, error) {
	first := params.FirstTurn
	if params.RandomFirst {
		first = c.random.Intn(params.Teams)
	}

	state, err := model.New(model.Team(first), params.Teams, params.Rows, params.Columns, params.RunLength)
	if err != nil {
		c.logger.Warn("invalid match parameters",
			slog.Int("teams", params.Teams),
			slog.Int("rows", params.Rows),
			slog.Int("columns", params.Columns),
			slog.Int("run_length", params.RunLength),
			slog.Int("first_turn", first),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	m := &Match{
		ID:        c.random.String(idLength, idAlphabet),
		State:     state,
		StartedAt: c.clock.Now(),
	}

	c.logger.Info("match started",
		slog.String("match_id", m.ID),
		slog.Int("teams", params.Teams),
		slog.Int("rows", params.Rows),
		slog.Int("columns", params.Columns),
		slog.Int("run_length", params.RunLength),
		slog.Int("first_turn", first),
	)

	return m, nil
}

// Drop applies a move and returns the row the token landed in
func (c *Controller) Drop(m *Match, team model.Team, column int) (int, error) {
	row, err := m.State.DropChipAt(team, column)
	if err != nil {
		c.logger.Debug("move rejected",
			slog.String("match_id", m.ID),
			slog.Int("team", int(team)),
			slog.Int("column", column),
			slog.String("error", err.Error()),
		)
		return 0, err
	}

	m.Moves++
	c.logger.Debug("move accepted",
		slog.String("match_id", m.ID),
		slog.Int("team", int(team)),
		slog.Int("column", column),
		slog.Int("row", row),
	)

	if m.Finished() {
		c.finish(m)
	}

	return row, nil
}

// Duration returns how long the match ran, or has been running so far
func (c *Controller) Duration(m *Match) time.Duration {
	if !m.FinishedAt.IsZero() {
		return m.FinishedAt.Sub(m.StartedAt)
	}
	return c.clock.Since(m.StartedAt)
}

func (c *Controller) finish(m *Match) {
	m.FinishedAt = c.clock.Now()

	attrs := []any{
		slog.String("match_id", m.ID),
		slog.String("outcome", string(m.Outcome())),
		slog.Int("moves", m.Moves),
		slog.Duration("duration", m.FinishedAt.Sub(m.StartedAt)),
	}
	if winner, ok := m.Winner(); ok {
		attrs = append(attrs, slog.Int("winner", int(winner)))
	}

	c.logger.Info("match finished", attrs...)
}
