package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholder values understood by terminal-aware renderers such as bat: the
// foreground and background slots get fixed sentinel colors, numbered slots
// embed their id in the leading channel of an 8-digit hex value.
const (
	foregroundHex = "#00000001"
	backgroundHex = "#00000002"
)

// Encode returns the placeholder hex color for a slot.
func Encode(s Slot) string {
	switch s {
	case Foreground:
		return foregroundHex
	case Background:
		return backgroundHex
	default:
		return fmt.Sprintf("#%02x000000", int(s))
	}
}

// Placeholder returns the placeholder hex color for the slot.
func (s Slot) Placeholder() string {
	return Encode(s)
}

// Decode recovers the slot from a placeholder hex color. The second return
// value is false for any hex value that does not follow the encoding.
func Decode(hex string) (Slot, bool) {
	switch hex {
	case foregroundHex:
		return Foreground, true
	case backgroundHex:
		return Background, true
	}

	if len(hex) != 9 || !strings.HasPrefix(hex, "#") || !strings.HasSuffix(hex, "000000") {
		return 0, false
	}

	n, err := strconv.ParseInt(hex[1:3], 16, 0)
	if err != nil || n > maxSlot {
		return 0, false
	}
	return Slot(n), true
}
