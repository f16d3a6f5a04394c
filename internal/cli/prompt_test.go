package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PrompterSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func TestPrompterSuite(t *testing.T) {
	suite.Run(t, new(PrompterSuite))
}

func (s *PrompterSuite) SetupTest() {
	s.out = &bytes.Buffer{}
}

func (s *PrompterSuite) prompter(input string) *Prompter {
	return NewPrompter(strings.NewReader(input), s.out)
}

func (s *PrompterSuite) TestYesNoAcceptsShortAndLongForms() {
	p := s.prompter("Y\nno\n  yes  \nn\n")

	for _, want := range []bool{true, false, true, false} {
		got, err := p.YesNo("the question")
		s.Require().NoError(err)
		s.Equal(want, got)
	}
}

func (s *PrompterSuite) TestYesNoRetries() {
	p := s.prompter("maybe\n\ny\n")

	got, err := p.YesNo("the question")
	s.Require().NoError(err)
	s.True(got)
	s.Equal(2, strings.Count(s.out.String(), "Not a yes or no answer, try again."))
	s.Equal(1, strings.Count(s.out.String(), "Please enter yes or no for the question."))
}

func (s *PrompterSuite) TestIntRejectsNegativeAndGarbage() {
	p := s.prompter("-3\nseven\n7\n")

	got, err := p.Int("the number of rows")
	s.Require().NoError(err)
	s.Equal(7, got)
	s.Equal(2, strings.Count(s.out.String(), "Not a valid number, try again."))
}

func (s *PrompterSuite) TestIntInRangeBounds() {
	p := s.prompter("7\n-1\n6\n0\n")

	got, err := p.IntInRange("the column", 0, 7)
	s.Require().NoError(err)
	s.Equal(6, got)
	s.Contains(s.out.String(), "Please enter a number for the column between 0 and 6.")
	s.Contains(s.out.String(), "Not between 0 and 6, try again.")
	s.Contains(s.out.String(), "Not a valid number, try again.")

	got, err = p.IntInRange("the column", 0, 7)
	s.Require().NoError(err)
	s.Equal(0, got)
}

func (s *PrompterSuite) TestIntInRangeRejectsEmptyRange() {
	p := s.prompter("0\n")

	_, err := p.IntInRange("the team to go first", 0, 0)
	s.Error(err)
	s.Empty(s.out.String())
}

func (s *PrompterSuite) TestEndOfInput() {
	p := s.prompter("bogus\n")

	_, err := p.YesNo("the question")
	s.ErrorIs(err, ErrInputClosed)

	_, err = p.Int("anything")
	s.ErrorIs(err, ErrInputClosed)
}
