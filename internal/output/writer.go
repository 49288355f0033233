// Package output provides game transcript formatting in text and JSON.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/storage"
)

// GameWriter is the interface for writing game transcripts. Different
// implementations handle different output formats.
type GameWriter interface {
	// WriteGame writes a single game transcript to the output.
	WriteGame(rec *storage.GameRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error
}

// TextWriter writes transcripts as a numbered move list.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a text transcript writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WriteGame writes the game header followed by its numbered moves. Captures
// are marked with the captured square, promotions with "crowned".
func (tw *TextWriter) WriteGame(rec *storage.GameRecord) error {
	if _, err := fmt.Fprintf(tw.w, "Game %s (%d moves)\n", rec.ID, len(rec.History)); err != nil {
		return err
	}

	colour := draughts.Black
	for i, mr := range rec.History {
		if _, err := fmt.Fprintf(tw.w, "%3d. %s %s", i+1, colour, FormatMove(mr.Move)); err != nil {
			return err
		}
		if mr.Captured != nil {
			if _, err := fmt.Fprintf(tw.w, " x(%d,%d)", mr.Captured.X, mr.Captured.Y); err != nil {
				return err
			}
		}
		if mr.Crowned {
			if _, err := fmt.Fprint(tw.w, " crowned"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
		colour = colour.Opposite()
	}

	_, err := fmt.Fprintln(tw.w)
	return err
}

// Flush flushes buffered output.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

// FormatMove renders a move as "(fx,fy)->(tx,ty)".
func FormatMove(m draughts.Move) string {
	return fmt.Sprintf("(%d,%d)->(%d,%d)", m.From.X, m.From.Y, m.To.X, m.To.Y)
}

