package mapping

// UnmappedReport accumulates colors that apply left untouched because the
// mapping had no slot assignment for them. Diagnostic only, never fatal.
type UnmappedReport struct {
	order []string
	seen  map[string]struct{}
}

// NewUnmappedReport returns an empty report.
func NewUnmappedReport() *UnmappedReport {
	return &UnmappedReport{seen: make(map[string]struct{})}
}

// Add records a color as unmapped. Repeated colors are recorded once.
func (r *UnmappedReport) Add(color string) {
	if color == "" {
		return
	}
	if _, ok := r.seen[color]; ok {
		return
	}
	r.seen[color] = struct{}{}
	r.order = append(r.order, color)
}

// Contains reports whether a color was left unmapped.
func (r *UnmappedReport) Contains(color string) bool {
	_, ok := r.seen[color]
	return ok
}

// Colors returns the unmapped colors in first-seen order.
func (r *UnmappedReport) Colors() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of distinct unmapped colors.
func (r *UnmappedReport) Len() int {
	return len(r.order)
}

// Substitute resolves one color through the mapping: if the color has a slot
// assignment the encoded placeholder and true are returned, otherwise the
// color is recorded as unmapped and the original value comes back unchanged.
func (r *UnmappedReport) Substitute(tm *ThemeMapping, color string) (string, bool) {
	if color == "" {
		return color, false
	}
	entry := tm.Lookup(color)
	if entry == nil || entry.Slot == nil {
		r.Add(color)
		return color, false
	}
	return entry.Slot.Placeholder(), true
}
