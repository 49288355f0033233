package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/encoding"
	"github.com/lgbarn/draughts-go/internal/testutil"
)

// recordingObserver logs notification calls in order.
type recordingObserver struct {
	events []string
}

func (r *recordingObserver) PieceMoved(fromX, fromY, toX, toY int) {
	r.events = append(r.events, "moved")
}

func (r *recordingObserver) PieceCrowned(x, y int) {
	r.events = append(r.events, "crowned")
}

func TestMovePiece_Boundary(t *testing.T) {
	s := New()

	if got := s.MovePiece(0, 5, 1, 4); got != 1 {
		t.Errorf("MovePiece(legal) = %d, want 1", got)
	}
	if got := s.MovePiece(0, 5, 1, 4); got != 0 {
		t.Errorf("MovePiece(source now empty) = %d, want 0", got)
	}
	if got := s.MoveCount(); got != 1 {
		t.Errorf("MoveCount() = %d, want 1", got)
	}
}

func TestGetPiece_Boundary(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"black piece", 0, 5, encoding.FlagBlack},
		{"white piece", 1, 0, encoding.FlagWhite},
		{"empty square", 4, 4, encoding.EncodedEmpty},
		{"off-board x", 8, 0, encoding.EncodedInvalid},
		{"off-board y", 0, -1, encoding.EncodedInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.GetPiece(tt.x, tt.y); got != tt.want {
				t.Errorf("GetPiece(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCurrentTurn_Boundary(t *testing.T) {
	s := New()

	if got := s.CurrentTurn(); got != encoding.FlagBlack {
		t.Errorf("CurrentTurn() = %d, want %d (Black)", got, encoding.FlagBlack)
	}

	s.MovePiece(0, 5, 1, 4)

	if got := s.CurrentTurn(); got != encoding.FlagWhite {
		t.Errorf("CurrentTurn() after a move = %d, want %d (White)", got, encoding.FlagWhite)
	}
}

func TestObserver_NotifiedOnSuccessOnly(t *testing.T) {
	s := New()
	obs := &recordingObserver{}
	s.AddObserver(obs)

	s.MovePiece(3, 3, 4, 4) // illegal: empty source
	if len(obs.events) != 0 {
		t.Fatalf("observer notified on failure: %v", obs.events)
	}

	s.MovePiece(0, 5, 1, 4)
	if diff := cmp.Diff([]string{"moved"}, obs.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestObserver_CrownedFiresAfterMoved(t *testing.T) {
	// Build a position where black crowns in one move.
	eng := testutil.NewTestEngine(t, draughts.Black,
		testutil.Placement{X: 3, Y: 1, Colour: draughts.Black},
	)

	s := Restore(eng.Snapshot(), nil)
	obs := &recordingObserver{}
	s.AddObserver(obs)

	if got := s.MovePiece(3, 1, 2, 0); got != 1 {
		t.Fatalf("MovePiece = %d, want 1", got)
	}

	if diff := cmp.Diff([]string{"moved", "crowned"}, obs.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory(t *testing.T) {
	s := New()
	s.MovePiece(0, 5, 1, 4)
	s.MovePiece(1, 2, 0, 3)
	s.MovePiece(4, 5, 5, 4) // black again

	hist := s.History()
	want := []MoveRecord{
		{Move: draughts.NewMove(0, 5, 1, 4)},
		{Move: draughts.NewMove(1, 2, 0, 3)},
		{Move: draughts.NewMove(4, 5, 5, 4)},
	}
	if diff := cmp.Diff(want, hist); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}

	// History is a copy; mutating it does not affect the session.
	hist[0].Crowned = true
	if s.History()[0].Crowned {
		t.Error("History() returned shared backing storage")
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	s := New()
	s.MovePiece(0, 5, 1, 4)

	restored := Restore(s.Snapshot(), s.History())

	if diff := cmp.Diff(s.Snapshot(), restored.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(s.History(), restored.History()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	if restored.CurrentTurn() != encoding.FlagWhite {
		t.Errorf("restored CurrentTurn() = %d, want White", restored.CurrentTurn())
	}
}
