package infrastructure

import (
	"sync"

	"github.com/L0Lock/LoopMethods/internal/loopmethods/application/ports"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/domain"
)

// Compile-time interface checks.
var (
	_ ports.IconProvider = (*GlyphIconProvider)(nil)
	_ ports.IconProvider = NoIcons{}
)

// GlyphIconProvider serves terminal glyphs as icon handles for the built-in
// modes. It stands in for the host's image-based icon collection; handles
// stay opaque strings either way.
type GlyphIconProvider struct {
	mu     sync.RWMutex
	glyphs map[domain.ModeID]string
}

// NewGlyphIconProvider creates a provider with glyphs for the built-in modes.
func NewGlyphIconProvider() *GlyphIconProvider {
	return &GlyphIconProvider{glyphs: builtinGlyphs()}
}

func builtinGlyphs() map[domain.ModeID]string {
	return map[domain.ModeID]string{
		domain.ModeLoop:      "⟳",
		domain.ModeStop:      "■",
		domain.ModeRestore:   "↺",
		domain.ModeJumpStart: "⇤",
		domain.ModePingPong:  "⇄",
	}
}

// Resolve returns the glyph for a mode, or "" if none is loaded.
func (p *GlyphIconProvider) Resolve(id domain.ModeID) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.glyphs[id]
}

// Release drops all loaded glyphs.
func (p *GlyphIconProvider) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.glyphs = map[domain.ModeID]string{}
}

// Load reinstates the built-in glyph set, e.g. before a registry reload.
func (p *GlyphIconProvider) Load() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.glyphs = builtinGlyphs()
}

// NoIcons is an IconProvider for hosts without icon assets: every mode
// resolves to the empty handle.
type NoIcons struct{}

// Resolve always returns "".
func (NoIcons) Resolve(domain.ModeID) string { return "" }

// Release is a no-op.
func (NoIcons) Release() {}
