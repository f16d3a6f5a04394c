package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/connectn/internal/model"
)

func TestBoardPlain(t *testing.T) {
	game, err := model.New(0, 2, 3, 4, 3)
	require.NoError(t, err)
	require.NoError(t, game.DropChip(0, 1))
	require.NoError(t, game.DropChip(1, 1))
	require.NoError(t, game.DropChip(0, 3))

	r := newRenderer(false, false)

	want := "0 1 2 3\n" +
		"-------\n" +
		"_ _ _ _\n" +
		"_ 1 _ _\n" +
		"_ 0 _ 0"
	assert.Equal(t, want, r.Board(game))
}

func TestBoardHexHeader(t *testing.T) {
	game, err := model.New(0, 2, 1, 12, 4)
	require.NoError(t, err)

	r := newRenderer(false, false)
	board := r.Board(game)

	assert.Contains(t, board, "0 1 2 3 4 5 6 7 8 9 A B\n")
	assert.Contains(t, board, "-----------------------\n")
}

func TestBoardColoured(t *testing.T) {
	game := model.NewDefault()
	require.NoError(t, game.DropChip(0, 0))

	coloured := newRenderer(true, false).Board(game)
	plain := newRenderer(false, false).Board(game)

	assert.Contains(t, coloured, "\x1b[")
	assert.NotContains(t, plain, "\x1b[")
}

func TestClearScreen(t *testing.T) {
	var buf bytes.Buffer

	newRenderer(false, false).ClearScreen(&buf)
	assert.Empty(t, buf.String())

	newRenderer(false, true).ClearScreen(&buf)
	assert.Equal(t, clearScreenSeq, buf.String())

	// A buffer is never a terminal
	buf.Reset()
	NewRenderer(&buf, false).ClearScreen(&buf)
	assert.Empty(t, buf.String())
}

func TestReason(t *testing.T) {
	cases := map[error]string{
		model.ErrOutOfBounds:      "that column was out of bounds",
		model.ErrColumnFull:       "that column was full",
		model.ErrNotThatTeamsTurn: "it was not that team's turn",
		model.ErrInvalidTeam:      "that was not a valid team",
		model.ErrGameOver:         "the game was already over",
	}
	for err, want := range cases {
		assert.Equal(t, want, Reason(err))
		assert.Equal(t, want, Reason(fmt.Errorf("wrapped: %w", err)))
	}

	assert.Equal(t, "something else", Reason(errors.New("something else")))
}
