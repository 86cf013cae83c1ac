// Package registry holds the playback mode catalog: an explicitly owned,
// explicitly lifetimed object injected into the controller, replacing the
// ambient module-level caches the feature historically grew out of.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/L0Lock/LoopMethods/internal/loopmethods/application/ports"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/domain"
)

var (
	// ErrUnknownMode is returned when a mode ID does not resolve.
	ErrUnknownMode = errors.New("unknown playback mode")

	// ErrDuplicateMode is returned when registering an already-present ID.
	ErrDuplicateMode = errors.New("playback mode already registered")

	// ErrTornDown is returned when the registry has been torn down.
	ErrTornDown = errors.New("registry has been torn down")
)

// Registry is the ordered catalog of available playback modes. It is safe
// for concurrent use; all accessors return snapshot copies.
type Registry struct {
	mu       sync.RWMutex
	icons    ports.IconProvider
	modes    []domain.PlaybackMode // registration order
	byID     map[domain.ModeID]int // index into modes
	tornDown bool
}

// New creates a Registry holding the built-in catalog, with icon refs
// resolved against the given provider. The standard loop entry is always
// present with sort index 0.
func New(icons ports.IconProvider) *Registry {
	r := &Registry{
		icons: icons,
		byID:  make(map[domain.ModeID]int),
	}
	for _, m := range domain.BuiltinModes() {
		m.IconRef = icons.Resolve(m.ID)
		r.byID[m.ID] = len(r.modes)
		r.modes = append(r.modes, m)
	}
	return r
}

// Register adds a host-defined mode to the catalog. Sort index ties keep
// registration order.
func (r *Registry) Register(mode domain.PlaybackMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tornDown {
		return ErrTornDown
	}
	if _, ok := r.byID[mode.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateMode, mode.ID)
	}

	mode.IconRef = r.icons.Resolve(mode.ID)
	r.byID[mode.ID] = len(r.modes)
	r.modes = append(r.modes, mode)
	return nil
}

// List returns the catalog ordered by sort index ascending, ties broken by
// registration order. The result is a fresh copy on every call and is never
// empty before Teardown.
func (r *Registry) List() []domain.PlaybackMode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.PlaybackMode, len(r.modes))
	copy(result, r.modes)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SortIndex < result[j].SortIndex
	})
	return result
}

// Resolve looks up a mode by its identifier.
func (r *Registry) Resolve(id domain.ModeID) (domain.PlaybackMode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.tornDown {
		return domain.PlaybackMode{}, ErrTornDown
	}
	i, ok := r.byID[id]
	if !ok {
		return domain.PlaybackMode{}, fmt.Errorf("%w: %s", ErrUnknownMode, id)
	}
	return r.modes[i], nil
}

// DefaultModeID returns the identifier of the lowest-sort-index entry, the
// default selection for new sessions.
func (r *Registry) DefaultModeID() domain.ModeID {
	list := r.List()
	if len(list) == 0 {
		return domain.ModeLoop
	}
	return list[0].ID
}

// Reload re-resolves icon refs in place, e.g. after an asset reload.
// Identifiers, descriptions and ordering are unchanged. Entries previously
// handed to callers become stale snapshots; callers re-fetch via List or
// Resolve.
func (r *Registry) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tornDown {
		return ErrTornDown
	}
	for i := range r.modes {
		r.modes[i].IconRef = r.icons.Resolve(r.modes[i].ID)
	}
	return nil
}

// Teardown releases icon assets and empties the catalog. Further Resolve,
// Register and Reload calls fail with ErrTornDown.
func (r *Registry) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tornDown {
		return
	}
	r.tornDown = true
	r.icons.Release()
	r.modes = nil
	r.byID = nil
}
