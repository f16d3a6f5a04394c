package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mcoot/connectn/internal/model"
)

const clearScreenSeq = "\x1b[2J\x1b[H"

// teamColors cycles through distinguishable foreground colours, one per team
var teamColors = []color.Attribute{
	color.FgRed, color.FgYellow, color.FgBlue, color.FgGreen,
	color.FgMagenta, color.FgCyan, color.FgHiRed, color.FgHiYellow,
	color.FgHiBlue, color.FgHiGreen, color.FgHiMagenta, color.FgHiCyan,
	color.FgWhite, color.FgHiWhite, color.FgHiBlack, color.FgBlack,
}

// Renderer draws boards as text
type Renderer struct {
	colors []*color.Color
	clear  bool
}

// NewRenderer creates a Renderer.
// Colour and screen clearing are only used when out is a terminal.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	tty := isTerminal(out)
	return newRenderer(tty && !noColor && !color.NoColor, tty)
}

func newRenderer(colorize, clearScreen bool) *Renderer {
	colors := make([]*color.Color, len(teamColors))
	for i, attr := range teamColors {
		c := color.New(attr, color.Bold)
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		colors[i] = c
	}
	return &Renderer{colors: colors, clear: clearScreen}
}

// ClearScreen wipes the terminal; it writes nothing when out is not a terminal
func (r *Renderer) ClearScreen(out io.Writer) {
	if r.clear {
		fmt.Fprint(out, clearScreenSeq)
	}
}

// Board renders the grid top row first under a hexadecimal column header
func (r *Renderer) Board(game *model.GameState) string {
	columns := game.Columns()

	header := make([]string, columns)
	for col := range header {
		header[col] = fmt.Sprintf("%X", col)
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(header, " "))
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("-", columns*2-1))

	rows := game.ToDisplayRows()
	slices.Reverse(rows)
	for _, row := range rows {
		sb.WriteByte('\n')
		for col, marker := range []rune(row) {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(r.marker(marker))
		}
	}
	return sb.String()
}

func (r *Renderer) marker(m rune) string {
	if m == model.EmptyMarker {
		return string(m)
	}
	idx := strings.IndexRune("0123456789abcdef", m)
	if idx < 0 {
		return string(m)
	}
	return r.colors[idx%len(r.colors)].Sprint(string(m))
}

// Reason explains a rejected move in one line
func Reason(err error) string {
	switch {
	case errors.Is(err, model.ErrOutOfBounds):
		return "that column was out of bounds"
	case errors.Is(err, model.ErrColumnFull):
		return "that column was full"
	case errors.Is(err, model.ErrNotThatTeamsTurn):
		return "it was not that team's turn"
	case errors.Is(err, model.ErrInvalidTeam):
		return "that was not a valid team"
	case errors.Is(err, model.ErrGameOver):
		return "the game was already over"
	default:
		return err.Error()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
