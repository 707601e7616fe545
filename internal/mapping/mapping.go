// Package mapping holds the curated assignment of theme colors to ANSI
// palette slots: collection from theme usage sites, merge with a previously
// curated mapping, and the JSON document a human edits between runs.
package mapping

import (
	"sort"

	"github.com/themeport/themeport/internal/ansi"
)

// Usage is one occurrence of a color in a theme: either a named UI setting
// or a syntax scope. Exactly one of Setting and Scope is set.
type Usage struct {
	Color   string
	Setting string
	Scope   string
}

// ColorMapping tracks everywhere a single color appears in a theme and which
// palette slot, if any, it has been assigned to.
type ColorMapping struct {
	ColorCode  string
	Slot       *ansi.Slot
	UISettings map[string]struct{}
	Scopes     map[string]struct{}
}

func newColorMapping(color string) *ColorMapping {
	return &ColorMapping{
		ColorCode:  color,
		UISettings: make(map[string]struct{}),
		Scopes:     make(map[string]struct{}),
	}
}

// UsageCount is the number of distinct usage sites for the color.
func (m *ColorMapping) UsageCount() int {
	return len(m.UISettings) + len(m.Scopes)
}

// Assign sets the slot for this color. A nil slot clears the assignment.
func (m *ColorMapping) Assign(slot *ansi.Slot) {
	m.Slot = slot
}

// SortedUISettings returns the UI setting names in ascending order.
func (m *ColorMapping) SortedUISettings() []string {
	return sortedKeys(m.UISettings)
}

// SortedScopes returns the scope names in ascending order.
func (m *ColorMapping) SortedScopes() []string {
	return sortedKeys(m.Scopes)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ThemeMapping is the full color-to-slot mapping for one theme, keyed by
// color code. No two entries share a color code.
type ThemeMapping struct {
	ThemeName string
	entries   map[string]*ColorMapping
}

// NewThemeMapping builds an empty mapping for the named theme.
func NewThemeMapping(themeName string) *ThemeMapping {
	return &ThemeMapping{
		ThemeName: themeName,
		entries:   make(map[string]*ColorMapping),
	}
}

// Collect builds a mapping from a stream of color usages. Usages with an
// empty color are skipped. Discovery order does not matter: only set
// membership survives.
func Collect(themeName string, usages []Usage) *ThemeMapping {
	tm := NewThemeMapping(themeName)
	for _, usage := range usages {
		tm.Add(usage)
	}
	return tm
}

// Add records a single usage on the mapping.
func (t *ThemeMapping) Add(usage Usage) {
	if usage.Color == "" {
		return
	}

	entry, ok := t.entries[usage.Color]
	if !ok {
		entry = newColorMapping(usage.Color)
		t.entries[usage.Color] = entry
	}

	if usage.Setting != "" {
		entry.UISettings[usage.Setting] = struct{}{}
	}
	if usage.Scope != "" {
		entry.Scopes[usage.Scope] = struct{}{}
	}
}

// Lookup returns the entry for a color code, or nil.
func (t *ThemeMapping) Lookup(color string) *ColorMapping {
	return t.entries[color]
}

// Len returns the number of distinct colors in the mapping.
func (t *ThemeMapping) Len() int {
	return len(t.entries)
}

// Entries returns all entries sorted by color code.
func (t *ThemeMapping) Entries() []*ColorMapping {
	entries := make([]*ColorMapping, 0, len(t.entries))
	for _, entry := range t.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ColorCode < entries[j].ColorCode
	})
	return entries
}

// EntriesByFamily returns all entries ordered by their assigned slot's
// position in the palette family, with unassigned colors last. Ties fall
// back to color code order.
func (t *ThemeMapping) EntriesByFamily() []*ColorMapping {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return familyRank(entries[i]) < familyRank(entries[j])
	})
	return entries
}

func familyRank(entry *ColorMapping) int {
	if entry.Slot == nil {
		return len(ansi.Family())
	}
	return ansi.FamilyIndex(*entry.Slot)
}

// MergeFrom carries slot assignments forward from a previously curated
// mapping. Only colors still present in the current mapping are touched;
// colors that exist solely in the prior mapping are dropped. Usage sets are
// never copied: they reflect the current theme.
func (t *ThemeMapping) MergeFrom(prior *ThemeMapping) {
	if prior == nil {
		return
	}
	for color, entry := range t.entries {
		if priorEntry := prior.entries[color]; priorEntry != nil {
			entry.Slot = priorEntry.Slot
		}
	}
}
