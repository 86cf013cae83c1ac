package domain

// ModeID is the stable identifier of a playback mode catalog entry.
type ModeID string

// Built-in mode identifiers.
const (
	ModeLoop      ModeID = "loop"
	ModeStop      ModeID = "stop"
	ModeRestore   ModeID = "restore"
	ModeJumpStart ModeID = "jump_start"
	ModePingPong  ModeID = "ping_pong"
)

// Kind represents the boundary-reaction policy of a playback mode.
type Kind int

const (
	KindLoop          Kind = iota // Default: host-native looping, no action
	KindStop                      // Stop at the end frame
	KindStopRestore               // Stop and restore the frame playback started from
	KindStopJumpStart             // Stop and jump to the start frame
	KindPingPong                  // Reverse direction at each boundary
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindStop:
		return "stop"
	case KindStopRestore:
		return "restore"
	case KindStopJumpStart:
		return "jump_start"
	case KindPingPong:
		return "ping_pong"
	default:
		return "loop"
	}
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) Kind {
	switch s {
	case "stop":
		return KindStop
	case "restore":
		return KindStopRestore
	case "jump_start":
		return KindStopJumpStart
	case "ping_pong":
		return KindPingPong
	default:
		return KindLoop
	}
}

// PlaybackMode is an immutable catalog entry describing one loop method.
// Instances handed out by the registry are snapshots: a registry reload
// produces fresh entries rather than mutating ones already returned.
type PlaybackMode struct {
	ID          ModeID
	Kind        Kind
	DisplayName string
	Description string
	IconRef     string // opaque handle resolved by the UI collaborator, empty if unavailable
	SortIndex   int
}

// BuiltinModes returns the built-in mode catalog in sort order.
// Icon refs are left empty; the registry resolves them against its provider.
func BuiltinModes() []PlaybackMode {
	return []PlaybackMode{
		{
			ID:          ModeLoop,
			Kind:        KindLoop,
			DisplayName: "Loop (default)",
			Description: "Standard looping playback (default)",
			SortIndex:   0,
		},
		{
			ID:          ModeStop,
			Kind:        KindStop,
			DisplayName: "Play Once & Stop",
			Description: "Play once and stop at the End Frame.",
			SortIndex:   1,
		},
		{
			ID:          ModeRestore,
			Kind:        KindStopRestore,
			DisplayName: "Play Once & Restore",
			Description: "Play once and jump back to the frame you started from.",
			SortIndex:   2,
		},
		{
			ID:          ModeJumpStart,
			Kind:        KindStopJumpStart,
			DisplayName: "Play Once & Jump Start",
			Description: "Play once and jump back to the Start Frame.",
			SortIndex:   3,
		},
		{
			ID:          ModePingPong,
			Kind:        KindPingPong,
			DisplayName: "Ping-Pong",
			Description: "Loop back and forth between the Start and End Frames.",
			SortIndex:   4,
		},
	}
}
