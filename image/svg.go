// Package image renders a fen.Position as an SVG board diagram.
package image

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/corentings/fen"
)

const (
	squareSize  = 45
	boardSize   = 8 * squareSize
	labelGutter = 15
)

type options struct {
	lightFill   string
	darkFill    string
	coordinates bool
}

// An Option configures the SVG output.
type Option func(*options)

// SquareColors sets the fill colors of the light and dark squares.
func SquareColors(light, dark string) Option {
	return func(o *options) {
		o.lightFill = light
		o.darkFill = dark
	}
}

// Coordinates adds file letters and rank digits along the board edges.
func Coordinates() Option {
	return func(o *options) {
		o.coordinates = true
	}
}

// SVG writes the position to w as an SVG image, rank 8 at the top. Pieces
// are drawn as Unicode figurines.
func SVG(w io.Writer, pos *fen.Position, opts ...Option) error {
	o := &options{
		lightFill: "#FFFDF6",
		darkFill:  "#86A666",
	}
	for _, opt := range opts {
		opt(o)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width, height := boardSize, boardSize
	if o.coordinates {
		width += labelGutter
		height += labelGutter
	}
	canvas.Start(width, height)

	for rank := 7; rank >= 0; rank-- {
		y := (7 - rank) * squareSize
		for file := 0; file < 8; file++ {
			x := file * squareSize
			fill := o.lightFill
			if (rank+file)%2 == 0 {
				fill = o.darkFill
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			piece := pos.Board[rank][file]
			if piece.IsEmpty() {
				continue
			}
			canvas.Text(x+squareSize/2, y+squareSize*2/3, string(piece.Glyph()),
				fmt.Sprintf("font-size:%dpx;text-anchor:middle", squareSize*3/4))
		}
	}

	if o.coordinates {
		style := "font-size:12px;text-anchor:middle;fill:#333333"
		for file := 0; file < 8; file++ {
			x := file*squareSize + squareSize/2
			canvas.Text(x, boardSize+labelGutter-3, string(rune('a'+file)), style)
		}
		for rank := 0; rank < 8; rank++ {
			y := (7-rank)*squareSize + squareSize/2 + 4
			canvas.Text(boardSize+labelGutter/2, y, string(rune('1'+rank)), style)
		}
	}

	canvas.End()
	return ew.err
}

// errWriter latches the first write error so svgo's fire-and-forget calls
// still surface failures.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
