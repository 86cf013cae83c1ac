package domain

// PlaybackRange is the playable frame range, supplied by the host on every
// frame-advance notification. Start <= End. The controller never owns it.
type PlaybackRange struct {
	Start int
	End   int
}

// Degenerate reports whether the range has zero length (Start == End).
func (r PlaybackRange) Degenerate() bool {
	return r.Start == r.End
}

// Contains reports whether frame lies inside the range.
func (r PlaybackRange) Contains(frame int) bool {
	return frame >= r.Start && frame <= r.End
}

// FrameSnapshot is the per-notification payload delivered by the host clock.
type FrameSnapshot struct {
	Playing bool
	Frame   int
	Range   PlaybackRange
}

// Direction is the playback direction of a session.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// DirectionFor converts a transport reverse flag to a Direction.
func DirectionFor(reverse bool) Direction {
	if reverse {
		return Reverse
	}
	return Forward
}
