/*
Package fen parses Forsyth-Edwards Notation (FEN) strings into validated,
immutable chess positions and renders them back as text diagrams.
The parser accepts anything syntactically well formed; it does not judge
chess legality (a board without kings, or with pawns on the first rank,
parses fine).
Example usage:

	// Parse a position
	pos, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
	    log.Fatal(err)
	}

	// Render it
	fmt.Println(pos.Draw())
*/
package fen

import "fmt"

// A Color is the color of a piece or the side to move.
type Color int8

const (
	// NoColor is the zero value; it only occurs on empty squares.
	NoColor Color = iota
	// White is the white side.
	White
	// Black is the black side.
	Black
)

// String implements the fmt.Stringer interface.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "NoColor"
}

// Other returns the opposing color.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// A PieceType is the kind of a chess piece, independent of color.
type PieceType int8

const (
	// NoPieceType is the zero value; it marks an empty square.
	NoPieceType PieceType = iota
	// King is the king piece type.
	King
	// Queen is the queen piece type.
	Queen
	// Rook is the rook piece type.
	Rook
	// Bishop is the bishop piece type.
	Bishop
	// Knight is the knight piece type.
	Knight
	// Pawn is the pawn piece type.
	Pawn
)

// String implements the fmt.Stringer interface.
func (t PieceType) String() string {
	switch t {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	}
	return "NoPieceType"
}

// A Piece is a color and a piece type. The zero value represents an empty
// square.
type Piece struct {
	Color Color
	Type  PieceType
}

// IsEmpty reports whether p marks an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// String returns the FEN letter for the piece (uppercase for white,
// lowercase for black) or an empty string for the empty square.
func (p Piece) String() string {
	var c byte
	switch p.Type {
	case King:
		c = 'K'
	case Queen:
		c = 'Q'
	case Rook:
		c = 'R'
	case Bishop:
		c = 'B'
	case Knight:
		c = 'N'
	case Pawn:
		c = 'P'
	default:
		return ""
	}
	if p.Color == Black {
		c |= 0x20
	}
	return string(c)
}

// A Square is a (file, rank) coordinate on the board. File 0 is the
// a-file, rank 0 is the first rank.
type Square struct {
	File int8
	Rank int8
}

// String returns the algebraic form of the square, e.g. "c6".
func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+byte(s.File), '1'+byte(s.Rank))
}

// A Board is an 8x8 grid of pieces indexed [rank][file]. Rank 0 holds the
// first rank, so b[0][0] is a1 and b[7][7] is h8. The zero Piece marks an
// empty square.
type Board [8][8]Piece

// Piece returns the piece on the given square.
func (b *Board) Piece(sq Square) Piece {
	return b[sq.Rank][sq.File]
}

// CastlingRights records which castling moves each side is still entitled
// to, independent of whether castling is currently legal.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// HasAny reports whether at least one right remains.
func (cr CastlingRights) HasAny() bool {
	return cr.WhiteKingside || cr.WhiteQueenside || cr.BlackKingside || cr.BlackQueenside
}

// String renders the rights in the fixed FEN order K, Q, k, q, omitting
// absent flags. All-false rights render as the empty string.
func (cr CastlingRights) String() string {
	var s string
	if cr.WhiteKingside {
		s += "K"
	}
	if cr.WhiteQueenside {
		s += "Q"
	}
	if cr.BlackKingside {
		s += "k"
	}
	if cr.BlackQueenside {
		s += "q"
	}
	return s
}

// A Position is a fully parsed FEN record. It is a plain value: copying it
// copies the board, and no field refers back into the input string.
//
// A Position is only ever produced whole; Decode either returns a valid
// Position or an error, never something in between.
type Position struct {
	Board          Board
	ActiveColor    Color
	Castling       CastlingRights
	EnPassant      *Square // nil when the FEN field is "-"
	HalfmoveClock  uint32
	FullmoveNumber uint32
}

// StartingFEN is the FEN string for the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartingPosition returns the standard initial position. The board layout
// is produced by decoding StartingFEN through the regular parser rather
// than by a second hand-built copy of the grid.
func StartingPosition() *Position {
	pos, err := Decode(StartingFEN)
	if err != nil {
		panic("fen: starting position must decode: " + err.Error())
	}
	return pos
}
