// Package ansi models the fixed 16-slot ANSI palette plus the special
// foreground and background slots, and the placeholder hex encoding used to
// smuggle slot numbers through theme files.
package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot identifies one of the 18 palette slots. Values 0-15 are the standard
// ANSI colors, negative values are the two special slots.
type Slot int

const (
	Background Slot = -2
	Foreground Slot = -1

	Black Slot = iota - 2
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White

	BlackBright
	RedBright
	GreenBright
	YellowBright
	BlueBright
	MagentaBright
	CyanBright
	WhiteBright
)

const (
	minSlot = -2
	maxSlot = 15
)

// ErrInvalidSlot reports a slot number or name outside the known palette.
var ErrInvalidSlot = fmt.Errorf("invalid ANSI slot")

var slotNames = map[Slot]string{
	Background:    "BACKGROUND",
	Foreground:    "FOREGROUND",
	Black:         "BLACK",
	Red:           "RED",
	Green:         "GREEN",
	Yellow:        "YELLOW",
	Blue:          "BLUE",
	Magenta:       "MAGENTA",
	Cyan:          "CYAN",
	White:         "WHITE",
	BlackBright:   "BLACK_BRIGHT",
	RedBright:     "RED_BRIGHT",
	GreenBright:   "GREEN_BRIGHT",
	YellowBright:  "YELLOW_BRIGHT",
	BlueBright:    "BLUE_BRIGHT",
	MagentaBright: "MAGENTA_BRIGHT",
	CyanBright:    "CYAN_BRIGHT",
	WhiteBright:   "WHITE_BRIGHT",
}

var slotsByName = func() map[string]Slot {
	byName := make(map[string]Slot, len(slotNames))
	for slot, name := range slotNames {
		byName[name] = slot
	}
	return byName
}()

// Name returns the canonical upper-case slot name, e.g. "RED_BRIGHT".
func (s Slot) Name() string {
	return slotNames[s]
}

// Title returns the display form of the slot name, e.g. "Red Bright".
func (s Slot) Title() string {
	words := strings.Split(strings.ToLower(s.Name()), "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

func (s Slot) String() string {
	return fmt.Sprintf("ANSI %02d: %s", int(s), s.Name())
}

// Valid reports whether the slot is one of the 18 known values.
func (s Slot) Valid() bool {
	return s >= minSlot && s <= maxSlot
}

// IsBright reports whether the slot is a bright variant (8-15).
func (s Slot) IsBright() bool {
	return s >= BlackBright
}

// IsSpecial reports whether the slot is foreground or background.
func (s Slot) IsSpecial() bool {
	return s < 0
}

// Base returns the non-bright variant of a bright slot, or the slot itself.
func (s Slot) Base() Slot {
	if s.IsBright() {
		return s - 8
	}
	return s
}

// FromNumber returns the slot for a numeric id in [-2, 15].
func FromNumber(n int) (Slot, error) {
	slot := Slot(n)
	if !slot.Valid() {
		return 0, fmt.Errorf("%w: number %d", ErrInvalidSlot, n)
	}
	return slot, nil
}

// FromName returns the slot for a canonical name. Matching is
// case-insensitive; a numeric string is accepted as a fallback.
func FromName(name string) (Slot, error) {
	trimmed := strings.TrimSpace(name)
	if slot, ok := slotsByName[strings.ToUpper(trimmed)]; ok {
		return slot, nil
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return FromNumber(n)
	}
	return 0, fmt.Errorf("%w: name %q", ErrInvalidSlot, name)
}

// Family returns all 18 slots in the fixed presentation order: BACKGROUND,
// FOREGROUND, then each hue with its bright variant interleaved.
func Family() []Slot {
	family := make([]Slot, 0, len(slotNames))
	family = append(family, Background, Foreground)
	for base := Black; base <= White; base++ {
		family = append(family, base, base+8)
	}
	return family
}

// FamilyIndex returns the slot's position within Family().
func FamilyIndex(s Slot) int {
	for i, slot := range Family() {
		if slot == s {
			return i
		}
	}
	return -1
}
