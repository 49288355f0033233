package draughts

// Coordinate is an (x, y) position on or near the board. Coordinates are
// immutable values; geometry functions return fresh values rather than
// sharing references.
type Coordinate struct {
	X int
	Y int
}

// OnBoard reports whether both components are within [0, BoardSize).
func (c Coordinate) OnBoard() bool {
	return c.X >= 0 && c.X <= BoardSize-1 && c.Y >= 0 && c.Y <= BoardSize-1
}

// MoveTargetsFrom returns the up-to-four diagonal neighbours at distance 1,
// in fixed order. Directions whose x or y component would go negative are
// omitted; components that overflow past the top edge are left in and must
// be filtered by OnBoard downstream. The order is observable in generated
// move lists and must not change.
func MoveTargetsFrom(c Coordinate) []Coordinate {
	targets := make([]Coordinate, 0, 4)
	if c.X >= 1 {
		targets = append(targets, Coordinate{X: c.X - 1, Y: c.Y + 1})
	}
	targets = append(targets, Coordinate{X: c.X + 1, Y: c.Y + 1})
	if c.Y >= 1 {
		targets = append(targets, Coordinate{X: c.X + 1, Y: c.Y - 1})
	}
	if c.X >= 1 && c.Y >= 1 {
		targets = append(targets, Coordinate{X: c.X - 1, Y: c.Y - 1})
	}
	return targets
}

// JumpTargetsFrom returns the up-to-four diagonal neighbours at distance 2,
// in fixed order, with the same omit-on-underflow behaviour as
// MoveTargetsFrom.
func JumpTargetsFrom(c Coordinate) []Coordinate {
	targets := make([]Coordinate, 0, 4)
	if c.Y >= 2 {
		targets = append(targets, Coordinate{X: c.X + 2, Y: c.Y - 2})
	}
	targets = append(targets, Coordinate{X: c.X + 2, Y: c.Y + 2})
	if c.X >= 2 && c.Y >= 2 {
		targets = append(targets, Coordinate{X: c.X - 2, Y: c.Y - 2})
	}
	if c.X >= 2 {
		targets = append(targets, Coordinate{X: c.X - 2, Y: c.Y + 2})
	}
	return targets
}

// MidpointCoordinate returns the square exactly between from and to on the
// diagonal, for the four canonical two-step jump deltas. Any other delta has
// no midpoint and reports false.
func MidpointCoordinate(from, to Coordinate) (Coordinate, bool) {
	switch {
	case to.X == from.X+2 && to.Y == from.Y+2:
		return Coordinate{X: from.X + 1, Y: from.Y + 1}, true
	case from.X >= 2 && from.Y >= 2 && to.X == from.X-2 && to.Y == from.Y-2:
		return Coordinate{X: from.X - 1, Y: from.Y - 1}, true
	case from.X >= 2 && to.X == from.X-2 && to.Y == from.Y+2:
		return Coordinate{X: from.X - 1, Y: from.Y + 1}, true
	case from.Y >= 2 && to.X == from.X+2 && to.Y == from.Y-2:
		return Coordinate{X: from.X + 1, Y: from.Y - 1}, true
	}
	return Coordinate{}, false
}
