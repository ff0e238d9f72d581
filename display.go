package fen

import (
	"fmt"
	"strings"
)

// Glyph returns the Unicode figurine for the piece, or the middle-dot
// placeholder for an empty square.
func (p Piece) Glyph() rune {
	glyphs := [...][2]rune{
		King:   {'♔', '♚'},
		Queen:  {'♕', '♛'},
		Rook:   {'♖', '♜'},
		Bishop: {'♗', '♝'},
		Knight: {'♘', '♞'},
		Pawn:   {'♙', '♟'},
	}
	if p.IsEmpty() {
		return '·'
	}
	if p.Color == Black {
		return glyphs[p.Type][1]
	}
	return glyphs[p.Type][0]
}

// Draw renders the position as a bordered diagram, rank 8 at the top,
// with Unicode piece glyphs, followed by the remaining FEN fields in
// human-readable form:
//
//	  +-----------------+
//	8 | ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜ |
//	  ...
//	1 | ♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖ |
//	  +-----------------+
//	    a b c d e f g h
//
//	Active color: White
//	...
func (p *Position) Draw() string {
	return p.draw(Piece.Glyph)
}

// DrawASCII is Draw with FEN letters instead of figurines, for terminals
// without Unicode support. Empty squares render as '.'.
func (p *Position) DrawASCII() string {
	return p.draw(func(pc Piece) rune {
		if pc.IsEmpty() {
			return '.'
		}
		return rune(pc.String()[0])
	})
}

func (p *Position) draw(glyph func(Piece) rune) string {
	var sb strings.Builder
	sb.WriteString("  +-----------------+\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d | ", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteRune(glyph(p.Board[rank][file]))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    a b c d e f g h\n")

	enPassant := "-"
	if p.EnPassant != nil {
		enPassant = p.EnPassant.String()
	}
	fmt.Fprintf(&sb, "\nActive color: %s\n", p.ActiveColor)
	fmt.Fprintf(&sb, "Castling rights: %s\n", p.Castling)
	fmt.Fprintf(&sb, "En passant: %s\n", enPassant)
	fmt.Fprintf(&sb, "Halfmove clock: %d\n", p.HalfmoveClock)
	fmt.Fprintf(&sb, "Fullmove number: %d", p.FullmoveNumber)
	return sb.String()
}
