package fen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawStartingPosition(t *testing.T) {
	want := strings.Join([]string{
		"  +-----------------+",
		"8 | ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜ |",
		"7 | ♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟ |",
		"6 | · · · · · · · · |",
		"5 | · · · · · · · · |",
		"4 | · · · · · · · · |",
		"3 | · · · · · · · · |",
		"2 | ♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙ |",
		"1 | ♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖ |",
		"  +-----------------+",
		"    a b c d e f g h",
		"",
		"Active color: White",
		"Castling rights: KQkq",
		"En passant: -",
		"Halfmove clock: 0",
		"Fullmove number: 1",
	}, "\n")
	assert.Equal(t, want, StartingPosition().Draw())
}

func TestDrawASCII(t *testing.T) {
	pos, err := Decode("rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2")
	require.NoError(t, err)

	out := pos.DrawASCII()
	assert.Contains(t, out, "8 | r n b q k b n r |")
	assert.Contains(t, out, "4 | . . . . P . . . |")
	assert.Contains(t, out, "En passant: c6")
	assert.Contains(t, out, "Fullmove number: 2")
	assert.NotContains(t, out, "♜")
}

func TestDrawEmptyBoard(t *testing.T) {
	pos, err := Decode("8/8/8/8/8/8/8/8 b - - 12 40")
	require.NoError(t, err)

	out := pos.Draw()
	assert.Contains(t, out, "5 | · · · · · · · · |")
	assert.Contains(t, out, "Active color: Black")
	assert.Contains(t, out, "Castling rights: \n")
	assert.Contains(t, out, "Halfmove clock: 12")
	assert.Contains(t, out, "Fullmove number: 40")
}

func TestPieceGlyph(t *testing.T) {
	tests := []struct {
		piece Piece
		want  rune
	}{
		{Piece{Color: White, Type: King}, '♔'},
		{Piece{Color: Black, Type: King}, '♚'},
		{Piece{Color: White, Type: Pawn}, '♙'},
		{Piece{Color: Black, Type: Knight}, '♞'},
		{Piece{}, '·'},
	}
	for _, tc := range tests {
		if got := tc.piece.Glyph(); got != tc.want {
			t.Errorf("expected %c but got %c", tc.want, got)
		}
	}
}
