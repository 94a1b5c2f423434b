package terminal

import (
	"io"
	"os"
)

// Frame is a fixed-size character grid that can render itself as a stream
type Frame interface {
	// Size returns the grid dimensions in cells
	Size() (width, height int)

	// Row returns printed line y, top line first
	Row(y int) []rune

	// Render writes every line followed by the cursor rewind sequence
	Render(w io.Writer) error
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
// Screen contents and scrollback are left intact
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Attempt raw mode reset - escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
