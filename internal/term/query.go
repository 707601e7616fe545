// Package term queries the controlling terminal for the real colors it
// renders the ANSI palette with, using the OSC 4/10/11 escape protocol.
package term

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	xterm "golang.org/x/term"

	"github.com/themeport/themeport/internal/ansi"
)

const (
	// DefaultTimeout bounds a single palette query round-trip.
	DefaultTimeout = 200 * time.Millisecond
	// DefaultRetries is the number of extra attempts after a timeout.
	DefaultRetries = 1

	responseLimit = 128
)

// Querier asks the controlling terminal for palette colors. It implements
// ansi.ColorSource; a terminal that does not answer within the timeout is
// reported as unknown, never as an error.
type Querier struct {
	TTYPath string
	Timeout time.Duration
	Retries int
}

// NewQuerier returns a querier with the default tty path and bounds.
func NewQuerier(timeout time.Duration, retries int) *Querier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if retries < 0 {
		retries = 0
	}
	return &Querier{TTYPath: "/dev/tty", Timeout: timeout, Retries: retries}
}

// SlotColor queries the terminal for the color of one palette slot.
func (q *Querier) SlotColor(slot ansi.Slot) (string, bool) {
	if !slot.Valid() {
		return "", false
	}

	query := queryForSlot(slot)
	for attempt := 0; attempt <= q.Retries; attempt++ {
		if hex, ok := q.roundTrip(query); ok {
			return hex, true
		}
	}
	return "", false
}

func queryForSlot(slot ansi.Slot) string {
	switch slot {
	case ansi.Foreground:
		return "\x1b]10;?\x07"
	case ansi.Background:
		return "\x1b]11;?\x07"
	default:
		return fmt.Sprintf("\x1b]4;%d;?\x07", int(slot))
	}
}

func (q *Querier) roundTrip(query string) (string, bool) {
	tty, err := os.OpenFile(q.TTYPath, os.O_RDWR, 0)
	if err != nil {
		return "", false
	}
	defer tty.Close()

	fd := int(tty.Fd())
	oldState, err := xterm.MakeRaw(fd)
	if err != nil {
		return "", false
	}
	defer xterm.Restore(fd, oldState)

	if _, err := tty.WriteString(query); err != nil {
		return "", false
	}

	if err := tty.SetReadDeadline(time.Now().Add(q.Timeout)); err != nil {
		return "", false
	}

	response := make([]byte, 0, responseLimit)
	buf := make([]byte, 1)
	for len(response) < responseLimit {
		n, err := tty.Read(buf)
		if err != nil {
			return "", false
		}
		if n == 0 {
			continue
		}
		response = append(response, buf[0])
		if terminated(response) {
			break
		}
	}

	return ParseColorResponse(string(response))
}

// A response ends with BEL or with the two-byte ST terminator.
func terminated(response []byte) bool {
	if len(response) == 0 {
		return false
	}
	if response[len(response)-1] == '\x07' {
		return true
	}
	return len(response) >= 2 &&
		response[len(response)-2] == '\x1b' &&
		response[len(response)-1] == '\\'
}

// ParseColorResponse extracts a #rrggbb color from an OSC color reply of the
// form `ESC]4;n;rgb:RRRR/GGGG/BBBB BEL`. Each component keeps its two most
// significant hex digits.
func ParseColorResponse(response string) (string, bool) {
	_, spec, ok := strings.Cut(response, "rgb:")
	if !ok {
		return "", false
	}
	spec = strings.TrimRight(spec, "\x07")
	spec = strings.TrimSuffix(spec, "\x1b\\")

	parts := strings.Split(spec, "/")
	if len(parts) != 3 {
		return "", false
	}

	channels := make([]uint8, 3)
	for i, part := range parts {
		if len(part) < 2 {
			return "", false
		}
		value, err := strconv.ParseUint(part[:2], 16, 8)
		if err != nil {
			return "", false
		}
		channels[i] = uint8(value)
	}

	return fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2]), true
}
