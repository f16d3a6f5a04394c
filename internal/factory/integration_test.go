package factory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectn/internal/model"
	"github.com/mcoot/connectn/internal/services/match"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
}

// Test: complete three-team game from start to win
func (s *IntegrationSuite) TestCompleteGameFlow() {
	s.app.MockRandom.QueueString("GAME0001")
	s.app.MockRandom.QueueIntn(1)

	// Step 1: Start a three-team match on a 5x5 grid needing three in a row, random first team
	m, err := s.app.MatchController.Start(match.Params{
		Teams:       3,
		Rows:        5,
		Columns:     5,
		RunLength:   3,
		RandomFirst: true,
	})
	s.Require().NoError(err)
	s.Equal("GAME0001", m.ID)
	s.Equal(model.Team(1), m.State.CurrentTurn())

	// Step 2: Team 1 builds a vertical run in column 0 while teams 2 and 0 play elsewhere
	moves := []struct {
		team   model.Team
		column int
	}{
		{1, 0}, {2, 1}, {0, 2},
		{1, 0}, {2, 3}, {0, 4},
	}
	for _, mv := range moves {
		_, err := s.app.MatchController.Drop(m, mv.team, mv.column)
		s.Require().NoError(err)
		s.app.MockClock.Advance(5 * time.Second)
	}
	s.Equal(match.OutcomeInProgress, m.Outcome())

	// Step 3: An out-of-turn move is refused without side effects
	_, err = s.app.MatchController.Drop(m, 0, 0)
	s.ErrorIs(err, model.ErrNotThatTeamsTurn)
	s.Equal(6, m.Moves)

	// Step 4: Winning move
	row, err := s.app.MatchController.Drop(m, 1, 0)
	s.Require().NoError(err)
	s.Equal(2, row)

	s.Equal(match.OutcomeWon, m.Outcome())
	winner, ok := m.Winner()
	s.True(ok)
	s.Equal(model.Team(1), winner)
	s.True(m.State.HasWonAlong(1, model.AxisVertical))
	s.Equal(30*time.Second, s.app.MatchController.Duration(m))

	// Step 5: The board is locked
	_, err = s.app.MatchController.Drop(m, 2, 1)
	s.ErrorIs(err, model.ErrGameOver)
}

func (s *IntegrationSuite) TestNewWithoutLogger() {
	app := New(Config{})
	s.NotNil(app.Logger)

	m, err := app.MatchController.Start(match.DefaultParams())
	s.Require().NoError(err)
	s.Len(m.ID, 8)
}
