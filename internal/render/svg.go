// Package render draws board snapshots as SVG images.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/engine"
)

// Options controls the rendered board's geometry and palette.
type Options struct {
	SquareSize  int    // Pixel size of one square
	LightColour string // Fill for light squares
	DarkColour  string // Fill for dark squares
	BlackColour string // Fill for black pieces
	WhiteColour string // Fill for white pieces
	CrownColour string // Fill for the crown marker
}

// DefaultOptions returns the standard board palette.
func DefaultOptions() Options {
	return Options{
		SquareSize:  48,
		LightColour: "#f0d9b5",
		DarkColour:  "#b58863",
		BlackColour: "#202020",
		WhiteColour: "#fafafa",
		CrownColour: "#d4af37",
	}
}

// fillDefaults replaces zero-value fields with the standard palette, so a
// partially populated Options still renders a usable board.
func (o Options) fillDefaults() Options {
	def := DefaultOptions()
	if o.SquareSize <= 0 {
		o.SquareSize = def.SquareSize
	}
	if o.LightColour == "" {
		o.LightColour = def.LightColour
	}
	if o.DarkColour == "" {
		o.DarkColour = def.DarkColour
	}
	if o.BlackColour == "" {
		o.BlackColour = def.BlackColour
	}
	if o.WhiteColour == "" {
		o.WhiteColour = def.WhiteColour
	}
	if o.CrownColour == "" {
		o.CrownColour = def.CrownColour
	}
	return o
}

// WriteSVG renders the snapshot to w. Row 0 is drawn at the top, so White's
// home rows appear at the top of the image and Black's at the bottom.
func WriteSVG(w io.Writer, snap engine.Snapshot, opts Options) {
	opts = opts.fillDefaults()
	size := opts.SquareSize
	board := size * draughts.BoardSize

	canvas := svg.New(w)
	canvas.Start(board, board)

	for y := 0; y < draughts.BoardSize; y++ {
		for x := 0; x < draughts.BoardSize; x++ {
			fill := opts.LightColour
			if (x+y)%2 == 1 {
				fill = opts.DarkColour
			}
			canvas.Rect(x*size, y*size, size, size, fmt.Sprintf("fill:%s", fill))
		}
	}

	for x := 0; x < draughts.BoardSize; x++ {
		for y := 0; y < draughts.BoardSize; y++ {
			piece := snap.Board[x][y]
			if piece == nil {
				continue
			}
			drawPiece(canvas, x, y, size, *piece, opts)
		}
	}

	canvas.End()
}

func drawPiece(canvas *svg.SVG, x, y, size int, piece draughts.Piece, opts Options) {
	cx := x*size + size/2
	cy := y*size + size/2
	radius := size * 2 / 5

	fill := opts.WhiteColour
	stroke := opts.BlackColour
	if piece.Colour == draughts.Black {
		fill = opts.BlackColour
		stroke = opts.WhiteColour
	}
	canvas.Circle(cx, cy, radius,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2", fill, stroke))

	if piece.Crowned {
		canvas.Circle(cx, cy, radius/3, fmt.Sprintf("fill:%s", opts.CrownColour))
	}
}
