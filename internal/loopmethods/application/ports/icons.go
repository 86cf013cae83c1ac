package ports

import (
	"github.com/L0Lock/LoopMethods/internal/loopmethods/domain"
)

// IconProvider resolves opaque icon handles for playback modes. Handles are
// consumed by the UI collaborator only; an empty string means no icon is
// available for the mode.
type IconProvider interface {
	// Resolve returns the icon handle for a mode, or "" if unavailable.
	Resolve(id domain.ModeID) string

	// Release frees loaded icon assets. Resolve returns "" afterwards
	// until the provider is reloaded.
	Release()
}
