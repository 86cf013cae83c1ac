package usecases

import "errors"

// Errors surfaced to callers of the playback controller.
var (
	// ErrInvalidModeSelection is returned when a caller attempts to
	// activate a mode ID not present in the registry. The prior selection
	// is retained.
	ErrInvalidModeSelection = errors.New("invalid playback mode selection")
)
