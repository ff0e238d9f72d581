package fen

import "fmt"

// An ErrorKind identifies which FEN field a parse failure belongs to.
type ErrorKind uint8

const (
	// ErrUnknown is a reserved fallback; it should not be reachable from
	// any input.
	ErrUnknown ErrorKind = iota
	// ErrFormat covers failures that cannot be pinned to a single field,
	// such as empty input.
	ErrFormat
	// ErrPiecePlacement covers the first field: wrong rank count, wrong
	// file count, or an unrecognized token.
	ErrPiecePlacement
	// ErrActiveColor covers the second field.
	ErrActiveColor
	// ErrCastlingRights covers the third field, including duplicated
	// flags.
	ErrCastlingRights
	// ErrEnPassant covers the fourth field.
	ErrEnPassant
	// ErrHalfmoveClock covers the fifth field.
	ErrHalfmoveClock
	// ErrFullmoveNumber covers the sixth field.
	ErrFullmoveNumber
)

// String implements the fmt.Stringer interface.
func (k ErrorKind) String() string {
	switch k {
	case ErrFormat:
		return "FEN format"
	case ErrPiecePlacement:
		return "piece placement"
	case ErrActiveColor:
		return "active color"
	case ErrCastlingRights:
		return "castling rights"
	case ErrEnPassant:
		return "en passant square"
	case ErrHalfmoveClock:
		return "halfmove clock"
	case ErrFullmoveNumber:
		return "fullmove number"
	}
	return "unknown"
}

// A ParseError describes a FEN parse failure. Kind names the field that
// failed, Input holds the unconsumed input at the point of failure.
type ParseError struct {
	Message string
	Input   string
	Kind    ErrorKind
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Kind == ErrUnknown {
		return "unknown parsing error"
	}
	return fmt.Sprintf("invalid %s: %s", e.Kind, e.Message)
}

// newParseError trims the offending input to a short fragment so error
// messages stay single-line.
func newParseError(kind ErrorKind, input, format string, args ...any) *ParseError {
	const fragmentLen = 16
	if len(input) > fragmentLen {
		input = input[:fragmentLen]
	}
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Input:   input,
		Kind:    kind,
	}
}
