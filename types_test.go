package fen

import "testing"

func TestSquareString(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{Square{File: 0, Rank: 0}, "a1"},
		{Square{File: 2, Rank: 5}, "c6"},
		{Square{File: 7, Rank: 7}, "h8"},
		{Square{File: 4, Rank: 2}, "e3"},
	}
	for _, tc := range tests {
		if got := tc.sq.String(); got != tc.want {
			t.Errorf("expected %s but got %s", tc.want, got)
		}
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{CastlingRights{}, ""},
		{CastlingRights{WhiteKingside: true, WhiteQueenside: true, BlackKingside: true, BlackQueenside: true}, "KQkq"},
		{CastlingRights{WhiteKingside: true, BlackQueenside: true}, "Kq"},
		{CastlingRights{BlackKingside: true}, "k"},
	}
	for _, tc := range tests {
		if got := tc.rights.String(); got != tc.want {
			t.Errorf("expected %q but got %q", tc.want, got)
		}
	}
}

func TestCastlingRightsHasAny(t *testing.T) {
	if (CastlingRights{}).HasAny() {
		t.Error("empty rights should not have any")
	}
	if !(CastlingRights{BlackQueenside: true}).HasAny() {
		t.Error("rights with one flag should have any")
	}
}

func TestPieceString(t *testing.T) {
	tests := []struct {
		piece Piece
		want  string
	}{
		{Piece{Color: White, Type: King}, "K"},
		{Piece{Color: Black, Type: King}, "k"},
		{Piece{Color: White, Type: Knight}, "N"},
		{Piece{Color: Black, Type: Pawn}, "p"},
		{Piece{}, ""},
	}
	for _, tc := range tests {
		if got := tc.piece.String(); got != tc.want {
			t.Errorf("expected %q but got %q", tc.want, got)
		}
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black {
		t.Error("expected Black")
	}
	if Black.Other() != White {
		t.Error("expected White")
	}
	if NoColor.Other() != NoColor {
		t.Error("expected NoColor")
	}
}

func TestBoardPiece(t *testing.T) {
	pos := StartingPosition()
	got := pos.Board.Piece(Square{File: 4, Rank: 0})
	if got != (Piece{Color: White, Type: King}) {
		t.Fatalf("expected the white king on e1 but got %+v", got)
	}
}
