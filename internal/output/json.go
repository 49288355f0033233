package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/draughts-go/internal/storage"
)

// JSONWriter writes game transcripts as JSON. It buffers games and writes
// them as an array on Flush.
type JSONWriter struct {
	w     io.Writer
	games []*storage.GameRecord
}

// NewJSONWriter creates a JSON transcript writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a game for output.
func (jw *JSONWriter) WriteGame(rec *storage.GameRecord) error {
	jw.games = append(jw.games, rec)
	return nil
}

// Flush writes the buffered games as an indented JSON array and resets the
// buffer.
func (jw *JSONWriter) Flush() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jw.games); err != nil {
		return err
	}
	jw.games = nil
	return nil
}
