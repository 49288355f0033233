package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lgbarn/draughts-go/internal/session"
	"github.com/lgbarn/draughts-go/internal/storage"
	"github.com/lgbarn/draughts-go/internal/testutil"
)

func sampleRecord(t *testing.T) *storage.GameRecord {
	t.Helper()

	s := session.New()
	for _, got := range []int{
		s.MovePiece(0, 5, 1, 4),
		s.MovePiece(1, 2, 0, 3),
		s.MovePiece(2, 5, 3, 4),
	} {
		if got != 1 {
			t.Fatal("setup move rejected")
		}
	}

	return &storage.GameRecord{
		ID:       "sample",
		Snapshot: s.Snapshot(),
		History:  s.History(),
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTextWriter(&buf)

	testutil.AssertNoError(t, tw.WriteGame(sampleRecord(t)))
	testutil.AssertNoError(t, tw.Flush())

	out := buf.String()
	testutil.AssertContains(t, out, "Game sample (3 moves)")
	testutil.AssertContains(t, out, "1. Black (0,5)->(1,4)")
	testutil.AssertContains(t, out, "2. White (1,2)->(0,3)")
	testutil.AssertContains(t, out, "3. Black (2,5)->(3,4)")
	testutil.AssertNotContains(t, out, "crowned")
	testutil.AssertNotContains(t, out, " x(")
}

func TestTextWriter_CaptureAndCrownAnnotations(t *testing.T) {
	rec := sampleRecord(t)
	captured := rec.History[0].Move.To
	rec.History[0].Captured = &captured
	rec.History[2].Crowned = true

	var buf bytes.Buffer
	tw := NewTextWriter(&buf)
	testutil.AssertNoError(t, tw.WriteGame(rec))
	testutil.AssertNoError(t, tw.Flush())

	out := buf.String()
	testutil.AssertContains(t, out, " x(1,4)")
	testutil.AssertContains(t, out, "(2,5)->(3,4) crowned")
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJSONWriter(&buf)

	testutil.AssertNoError(t, jw.WriteGame(sampleRecord(t)))
	testutil.AssertNoError(t, jw.Flush())

	var decoded []*storage.GameRecord
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	testutil.AssertEqual(t, len(decoded), 1)
	testutil.AssertEqual(t, decoded[0].ID, "sample")
	testutil.AssertEqual(t, len(decoded[0].History), 3)
}

func TestFormatMove(t *testing.T) {
	rec := sampleRecord(t)
	testutil.AssertEqual(t, FormatMove(rec.History[0].Move), "(0,5)->(1,4)")
}

func TestGameWriterInterface(t *testing.T) {
	var buf bytes.Buffer
	writers := []GameWriter{NewTextWriter(&buf), NewJSONWriter(&buf)}
	for _, w := range writers {
		testutil.AssertNoError(t, w.WriteGame(sampleRecord(t)))
		testutil.AssertNoError(t, w.Flush())
	}
}
