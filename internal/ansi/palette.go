package ansi

import "sync"

// ColorSource answers what real RGB color the terminal currently renders for
// a slot. Implementations may time out; they report that through ok=false
// rather than an error.
type ColorSource interface {
	SlotColor(slot Slot) (hex string, ok bool)
}

// ColorSourceFunc adapts a function to the ColorSource interface.
type ColorSourceFunc func(slot Slot) (string, bool)

func (f ColorSourceFunc) SlotColor(slot Slot) (string, bool) {
	return f(slot)
}

// Palette resolves slots to the terminal's real colors through a ColorSource,
// caching every answer, including "terminal did not respond". Safe for
// concurrent use.
type Palette struct {
	source ColorSource

	mu       sync.Mutex
	resolved map[Slot]resolvedColor
}

type resolvedColor struct {
	hex   string
	known bool
}

// NewPalette builds a palette backed by the given source. A nil source
// resolves every slot as unknown.
func NewPalette(source ColorSource) *Palette {
	return &Palette{
		source:   source,
		resolved: make(map[Slot]resolvedColor, len(slotNames)),
	}
}

// ResolvedColor returns the terminal's current color for a slot, or ok=false
// if the terminal could not be queried. The first answer per slot is cached
// for the lifetime of the palette.
func (p *Palette) ResolvedColor(slot Slot) (string, bool) {
	if !slot.Valid() {
		return "", false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if cached, ok := p.resolved[slot]; ok {
		return cached.hex, cached.known
	}

	var entry resolvedColor
	if p.source != nil {
		entry.hex, entry.known = p.source.SlotColor(slot)
	}
	p.resolved[slot] = entry
	return entry.hex, entry.known
}

// Reset drops all cached resolutions so the next access re-queries the
// source. Intended for tests.
func (p *Palette) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resolved = make(map[Slot]resolvedColor, len(slotNames))
}
