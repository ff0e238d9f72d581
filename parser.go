package fen

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Decode parses a FEN string into a Position.
//
// The six fields are parsed in their fixed order with no backtracking
// across field boundaries; the first failure aborts the whole parse and
// the returned error is a *ParseError naming the field. Characters left
// over after the fullmove number are ignored.
func Decode(fen string) (*Position, error) {
	return decodeFEN(fen)
}

// MustDecode is like Decode but panics on error. It is intended for
// known-good constants.
func MustDecode(fen string) *Position {
	pos, err := decodeFEN(fen)
	if err != nil {
		panic("fen: MustDecode: " + err.Error())
	}
	return pos
}

// decodeFEN sequences the six field parsers, threading the unconsumed
// remainder of the input from one into the next.
func decodeFEN(fen string) (*Position, error) {
	if strings.TrimSpace(fen) == "" {
		return nil, newParseError(ErrFormat, fen, "empty input")
	}

	board, rest, perr := parsePiecePlacement(fen)
	if perr != nil {
		return nil, perr
	}
	color, rest, perr := parseActiveColor(rest)
	if perr != nil {
		return nil, perr
	}
	castling, rest, perr := parseCastlingRights(rest)
	if perr != nil {
		return nil, perr
	}
	enPassant, rest, perr := parseEnPassant(rest)
	if perr != nil {
		return nil, perr
	}
	halfmove, rest, perr := parseCounter(rest, ErrHalfmoveClock)
	if perr != nil {
		return nil, perr
	}
	fullmove, _, perr := parseCounter(rest, ErrFullmoveNumber)
	if perr != nil {
		return nil, perr
	}

	return &Position{
		Board:          board,
		ActiveColor:    color,
		Castling:       castling,
		EnPassant:      enPassant,
		HalfmoveClock:  halfmove,
		FullmoveNumber: fullmove,
	}, nil
}

// consumeSpaces consumes a run of one or more blanks and reports whether
// any were present.
func consumeSpaces(s string) (string, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:], i > 0
}

// parsePiecePlacement parses the first field: eight "/"-separated rank
// descriptors, listed from rank 8 down to rank 1. The parsed ranks are
// stored reversed so that board[0] is rank 1, and the mandatory blank run
// after the field is consumed.
func parsePiecePlacement(s string) (Board, string, *ParseError) {
	var board Board
	rest := s
	for i := 0; i < 8; i++ {
		if i > 0 {
			if len(rest) == 0 || rest[0] != '/' {
				return board, rest, newParseError(ErrPiecePlacement, rest, "expected 8 ranks, got %d", i)
			}
			rest = rest[1:]
		}
		rank, r, perr := parseRank(rest)
		if perr != nil {
			return board, rest, perr
		}
		board[7-i] = rank
		rest = r
	}
	if strings.HasPrefix(rest, "/") {
		return board, rest, newParseError(ErrPiecePlacement, rest, "more than 8 ranks")
	}
	rest, ok := consumeSpaces(rest)
	if !ok {
		return board, rest, newParseError(ErrPiecePlacement, rest, "expected a space after the placement field")
	}
	return board, rest, nil
}

// parseRank parses one rank descriptor: a sequence of piece letters and
// empty-square run digits that must account for exactly 8 files.
func parseRank(s string) ([8]Piece, string, *ParseError) {
	var rank [8]Piece
	file := 0
	i := 0
	for i < len(s) {
		c := s[i]
		if p, ok := pieceFromLetter(c); ok {
			if file >= 8 {
				return rank, s, newParseError(ErrPiecePlacement, s[i:], "rank overflows 8 files")
			}
			rank[file] = p
			file++
			i++
			continue
		}
		if c >= '0' && c <= '9' {
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(s[i:j])
			if err != nil || n < 1 || n > 8 {
				return rank, s, newParseError(ErrPiecePlacement, s[i:], "bad empty-square run %q", s[i:j])
			}
			file += n
			if file > 8 {
				return rank, s, newParseError(ErrPiecePlacement, s[i:], "rank overflows 8 files")
			}
			i = j
			continue
		}
		break
	}
	if i == 0 {
		return rank, s, newParseError(ErrPiecePlacement, s, "unrecognized token %s", firstRune(s))
	}
	if file != 8 {
		return rank, s, newParseError(ErrPiecePlacement, s[i:], "rank covers %d files, want 8", file)
	}
	return rank, s[i:], nil
}

// pieceFromLetter maps a FEN piece letter to its piece. Case selects the
// color.
func pieceFromLetter(c byte) (Piece, bool) {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c &^= 0x20
	}
	switch c {
	case 'K':
		return Piece{Color: color, Type: King}, true
	case 'Q':
		return Piece{Color: color, Type: Queen}, true
	case 'R':
		return Piece{Color: color, Type: Rook}, true
	case 'B':
		return Piece{Color: color, Type: Bishop}, true
	case 'N':
		return Piece{Color: color, Type: Knight}, true
	case 'P':
		return Piece{Color: color, Type: Pawn}, true
	}
	return Piece{}, false
}

// parseActiveColor parses the second field: exactly "w" or "b" followed
// by a mandatory blank run.
func parseActiveColor(s string) (Color, string, *ParseError) {
	if len(s) == 0 {
		return NoColor, s, newParseError(ErrActiveColor, s, "missing field")
	}
	var color Color
	switch s[0] {
	case 'w':
		color = White
	case 'b':
		color = Black
	default:
		return NoColor, s, newParseError(ErrActiveColor, s, "want 'w' or 'b', got %s", firstRune(s))
	}
	rest, ok := consumeSpaces(s[1:])
	if !ok {
		return NoColor, rest, newParseError(ErrActiveColor, rest, "expected a space after the color field")
	}
	return color, rest, nil
}

// parseCastlingRights parses the third field: a maximal run over
// {-, K, Q, k, q} followed by a mandatory blank run. A run of exactly "-"
// yields no rights; otherwise each letter may appear at most once.
func parseCastlingRights(s string) (CastlingRights, string, *ParseError) {
	var rights CastlingRights
	i := 0
	for i < len(s) && strings.IndexByte("-KQkq", s[i]) >= 0 {
		i++
	}
	if i == 0 {
		return rights, s, newParseError(ErrCastlingRights, s, "want '-' or letters from \"KQkq\", got %s", firstRune(s))
	}
	run := s[:i]
	rest, ok := consumeSpaces(s[i:])
	if !ok {
		return rights, rest, newParseError(ErrCastlingRights, rest, "expected a space after the castling field")
	}
	if run == "-" {
		return rights, rest, nil
	}

	seen := make(map[byte]struct{}, len(run))
	for k := 0; k < len(run); k++ {
		c := run[k]
		if _, dup := seen[c]; dup {
			flags := maps.Keys(seen)
			slices.Sort(flags)
			return CastlingRights{}, rest, newParseError(ErrCastlingRights, run,
				"duplicate flag %q after %q", c, string(flags))
		}
		seen[c] = struct{}{}
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		}
	}
	return rights, rest, nil
}

// parseEnPassant parses the fourth field: "-" for no target, or a file
// letter a-h followed by a rank digit that must be '3' or '6' (the only
// ranks a double pawn push can expose), then a mandatory blank run.
func parseEnPassant(s string) (*Square, string, *ParseError) {
	if len(s) == 0 {
		return nil, s, newParseError(ErrEnPassant, s, "missing field")
	}
	if s[0] == '-' {
		rest, ok := consumeSpaces(s[1:])
		if !ok {
			return nil, rest, newParseError(ErrEnPassant, rest, "expected a space after the en passant field")
		}
		return nil, rest, nil
	}
	if len(s) < 2 || s[0] < 'a' || s[0] > 'h' || (s[1] != '3' && s[1] != '6') {
		return nil, s, newParseError(ErrEnPassant, s, "want '-' or a target like \"c6\" on rank 3 or 6")
	}
	sq := &Square{
		File: int8(s[0] - 'a'),
		Rank: int8(s[1] - '1'),
	}
	rest, ok := consumeSpaces(s[2:])
	if !ok {
		return nil, rest, newParseError(ErrEnPassant, rest, "expected a space after the en passant field")
	}
	return sq, rest, nil
}

// parseCounter parses a maximal decimal digit run as a non-negative
// 32-bit integer and consumes an optional trailing blank run. It serves
// both the halfmove clock and the fullmove number; kind selects the error
// classification.
func parseCounter(s string, kind ErrorKind) (uint32, string, *ParseError) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, s, newParseError(kind, s, "want a decimal number, got %s", firstRune(s))
	}
	v, err := strconv.ParseUint(s[:i], 10, 32)
	if err != nil {
		return 0, s, newParseError(kind, s, "%q out of range", s[:i])
	}
	rest := s[i:]
	if r, ok := consumeSpaces(rest); ok {
		rest = r
	}
	return uint32(v), rest, nil
}

// firstRune renders the head of the remaining input for error messages,
// or a marker when the input ran out.
func firstRune(s string) string {
	if s == "" {
		return "end of input"
	}
	r := []rune(s)
	return strconv.Quote(string(r[0]))
}
