package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidCoordinate", ErrInvalidCoordinate, ErrInvalidCoordinate},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
		{"ErrCorruptGame", ErrCorruptGame, ErrCorruptGame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to query board: %w", ErrInvalidCoordinate)

	if !errors.Is(wrapped, ErrInvalidCoordinate) {
		t.Errorf("errors.Is(wrapped, ErrInvalidCoordinate) = false, want true")
	}
}

// TestGameError_Error verifies the error message format
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrIllegalMove,
				GameID:   "a1b2c3",
				MoveNum:  12,
				MoveText: "(0,5)->(2,3)",
			},
			contains: []string{"game a1b2c3", "move 12", "(0,5)->(2,3)", "illegal move"},
		},
		{
			name: "minimal context",
			err: &GameError{
				Err:    ErrCorruptGame,
				GameID: "deadbeef",
			},
			contains: []string{"game deadbeef", "corrupt game"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestGameError_Unwrap verifies that GameError properly implements Unwrap
func TestGameError_Unwrap(t *testing.T) {
	gameErr := &GameError{
		Err:    ErrCorruptGame,
		GameID: "a1b2c3",
	}

	// Unwrap should return the underlying error
	unwrapped := errors.Unwrap(gameErr)
	if !errors.Is(unwrapped, ErrCorruptGame) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrCorruptGame)
	}

	// errors.Is should work through the wrapper
	if !errors.Is(gameErr, ErrCorruptGame) {
		t.Error("errors.Is(gameErr, ErrCorruptGame) = false, want true")
	}
}

// TestGameError_As verifies that errors.As works with GameError
func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:      ErrIllegalMove,
		GameID:   "feedface",
		MoveNum:  24,
		MoveText: "(2,5)->(2,4)",
	}

	// Wrap it further
	wrapped := fmt.Errorf("replay failed: %w", gameErr)

	// Should be able to extract GameError with errors.As
	var extractedErr *GameError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract GameError")
	}

	if extractedErr.GameID != "feedface" {
		t.Errorf("extractedErr.GameID = %q, want %q", extractedErr.GameID, "feedface")
	}
	if extractedErr.MoveNum != 24 {
		t.Errorf("extractedErr.MoveNum = %d, want 24", extractedErr.MoveNum)
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	original := ErrInvalidCoordinate
	wrapped := Wrap(original, "querying square")

	if !errors.Is(wrapped, ErrInvalidCoordinate) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "querying square") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	original := ErrIllegalMove
	wrapped := Wrapf(original, "move %d in game %s", 15, "a1b2c3")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// TestWrap_Nil verifies that wrapping nil stays nil
func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
