package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/corentings/fen"
)

// Terminal palette. Square backgrounds come from the config; piece and
// label colors are fixed so figurines stay readable on both square tones.
var (
	colorWhitePiece = lipgloss.Color("#FFFFFF")
	colorBlackPiece = lipgloss.Color("#1A1A1A")

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// render returns the diagram for pos according to cfg. With NoColor set
// it falls back to the library's plain renderers, which are also what a
// redirected pipe should receive.
func render(pos *fen.Position, cfg *displayConfig) string {
	if cfg.NoColor {
		if cfg.ASCII {
			return pos.DrawASCII()
		}
		return pos.Draw()
	}
	return renderStyled(pos, cfg)
}

func renderStyled(pos *fen.Position, cfg *displayConfig) string {
	lightSquare := lipgloss.NewStyle().Background(lipgloss.Color(cfg.LightSquare))
	darkSquare := lipgloss.NewStyle().Background(lipgloss.Color(cfg.DarkSquare))

	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%d ", rank+1)))
		for file := 0; file < 8; file++ {
			sq := lightSquare
			if (rank+file)%2 == 0 {
				sq = darkSquare
			}
			cell := "   "
			if piece := pos.Board[rank][file]; !piece.IsEmpty() {
				fg := colorWhitePiece
				if piece.Color == fen.Black {
					fg = colorBlackPiece
				}
				sq = sq.Foreground(fg)
				cell = " " + glyphFor(piece, cfg) + " "
			}
			sb.WriteString(sq.Render(cell))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(labelStyle.Render("   a  b  c  d  e  f  g  h"))
	sb.WriteByte('\n')

	enPassant := "-"
	if pos.EnPassant != nil {
		enPassant = pos.EnPassant.String()
	}
	fmt.Fprintf(&sb, "\n%s %s\n", fieldStyle.Render("Active color:"), pos.ActiveColor)
	fmt.Fprintf(&sb, "%s %s\n", fieldStyle.Render("Castling rights:"), pos.Castling)
	fmt.Fprintf(&sb, "%s %s\n", fieldStyle.Render("En passant:"), enPassant)
	fmt.Fprintf(&sb, "%s %d\n", fieldStyle.Render("Halfmove clock:"), pos.HalfmoveClock)
	fmt.Fprintf(&sb, "%s %d", fieldStyle.Render("Fullmove number:"), pos.FullmoveNumber)
	return sb.String()
}

func glyphFor(piece fen.Piece, cfg *displayConfig) string {
	if cfg.ASCII {
		return piece.String()
	}
	return string(piece.Glyph())
}
