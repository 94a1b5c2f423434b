package terminal

import (
	"strconv"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiSGR0 = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// DECAWM: Auto-Wrap Mode
	csiAutoWrapOn = []byte("\x1b[?7h")
)

// AppendCursorPrevLine appends CSI n F, moving the cursor to column 1 of the
// line n rows above
func AppendCursorPrevLine(dst []byte, n int) []byte {
	if n < 1 {
		n = 1
	}
	dst = append(dst, 0x1b, '[')
	dst = strconv.AppendInt(dst, int64(n), 10)
	return append(dst, 'F')
}

// AppendRewind appends the sequence that returns the cursor to the first
// line of a frame of the given height printed with one newline per row
// Moving up height+1 lines and emitting a newline lands on the first row
// without leaving the cursor above the drawn region
func AppendRewind(dst []byte, height int) []byte {
	dst = AppendCursorPrevLine(dst, height+1)
	return append(dst, '\n')
}
