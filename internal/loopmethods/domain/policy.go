package domain

// Boundary identifies which end of the playable range a frame touched.
type Boundary int

const (
	BoundaryNone Boundary = iota
	BoundaryStart
	BoundaryEnd
)

// String returns the boundary name.
func (b Boundary) String() string {
	switch b {
	case BoundaryStart:
		return "start"
	case BoundaryEnd:
		return "end"
	default:
		return "none"
	}
}

// CommandPlan is the ordered set of transport commands a boundary policy
// wants issued for one frame-advance notification. Cancel always comes
// first; JumpTo and Resume, when set, follow it in that order.
type CommandPlan struct {
	Cancel        bool
	RestoreOrigin bool  // cancel with restore-position, only meaningful with Cancel
	JumpTo        *int  // set current frame after cancelling
	Resume        *bool // restart playback after cancelling; value is the reverse flag
	Boundary      Boundary
}

// None reports whether the plan issues no commands.
func (p CommandPlan) None() bool {
	return !p.Cancel
}

// EvaluateBoundary applies a mode's boundary policy to the current frame
// position. It is a pure function: exactly one evaluation per notification,
// whole-frame equality, no tolerance. Callers are responsible for the idle
// filter and for issuing each plan at most once per boundary crossing.
func EvaluateBoundary(kind Kind, frame int, r PlaybackRange) CommandPlan {
	switch kind {
	case KindLoop:
		// Host-native looping governs.
		return CommandPlan{}

	case KindStop:
		if frame == r.End {
			return CommandPlan{Cancel: true, Boundary: BoundaryEnd}
		}
		return CommandPlan{}

	case KindStopRestore:
		if frame == r.End {
			return CommandPlan{Cancel: true, RestoreOrigin: true, Boundary: BoundaryEnd}
		}
		return CommandPlan{}

	case KindStopJumpStart:
		if frame == r.End {
			start := r.Start
			return CommandPlan{Cancel: true, JumpTo: &start, Boundary: BoundaryEnd}
		}
		return CommandPlan{}

	case KindPingPong:
		// A zero-length range would cancel and replay on every tick.
		// Degrade to stop semantics instead.
		if r.Degenerate() {
			if frame == r.End {
				return CommandPlan{Cancel: true, Boundary: BoundaryEnd}
			}
			return CommandPlan{}
		}
		if frame == r.End || frame == r.Start {
			reverse := frame == r.End
			boundary := BoundaryStart
			if reverse {
				boundary = BoundaryEnd
			}
			return CommandPlan{Cancel: true, Resume: &reverse, Boundary: boundary}
		}
		return CommandPlan{}

	default:
		return CommandPlan{}
	}
}
