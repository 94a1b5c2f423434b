// Package screen holds the character grid drawn each frame.
package screen

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/lixenwraith/sphere/terminal"
)

// Blank is the background glyph every cell resets to
const Blank = ' '

// ErrDestroyed is returned when rendering a released buffer
var ErrDestroyed = errors.New("screen: buffer destroyed")

// MaxCells bounds width*height of a buffer
const MaxCells = 1 << 24

// ResourceError reports a buffer that could not be allocated
type ResourceError struct {
	Width, Height int
	Reason        string
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("screen: cannot allocate %dx%d buffer: %s", e.Width, e.Height, e.Reason)
}

// Buffer is a fixed-size grid of glyphs with a bottom-left origin
// Cells are stored row-major in print order: cells[line*width + x], line 0 on top
type Buffer struct {
	width  int
	height int
	cells  []rune
	out    []byte // Reused render scratch
}

// NewBuffer allocates a width x height grid of blanks
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, &ResourceError{Width: width, Height: height, Reason: "dimensions must be positive"}
	}
	// Division keeps the check itself from overflowing
	if width > MaxCells/height {
		return nil, &ResourceError{
			Width:  width,
			Height: height,
			Reason: fmt.Sprintf("more than %d cells", MaxCells),
		}
	}
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
		// One byte per ASCII glyph plus newlines and rewind sequence
		out: make([]byte, 0, (width+1)*height+16),
	}
	b.Clear()
	return b, nil
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets every cell to blank
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Blank
	}
}

// Write stores glyph at (x, y) with y = 0 on the bottom row
// Out-of-range coordinates are ignored
func (b *Buffer) Write(x, y int, glyph rune) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height || b.cells == nil {
		return
	}
	b.cells[(b.height-1-y)*b.width+x] = glyph
}

// At returns the glyph at (x, y) with y = 0 on the bottom row
func (b *Buffer) At(x, y int) rune {
	if x < 0 || x >= b.width || y < 0 || y >= b.height || b.cells == nil {
		return Blank
	}
	return b.cells[(b.height-1-y)*b.width+x]
}

// Row returns printed line y, top line first
// The slice aliases the buffer and is valid until the next write
func (b *Buffer) Row(y int) []rune {
	if y < 0 || y >= b.height || b.cells == nil {
		return nil
	}
	return b.cells[y*b.width : (y+1)*b.width]
}

// IsBlank reports whether every cell holds the background glyph
func (b *Buffer) IsBlank() bool {
	for _, r := range b.cells {
		if r != Blank {
			return false
		}
	}
	return true
}

// Render writes height lines of width glyphs and the cursor rewind sequence
// in a single Write, so a frame is never left half-printed
func (b *Buffer) Render(w io.Writer) error {
	if b.cells == nil {
		return ErrDestroyed
	}

	out := b.out[:0]
	for y := 0; y < b.height; y++ {
		for _, r := range b.cells[y*b.width : (y+1)*b.width] {
			if r < utf8.RuneSelf {
				out = append(out, byte(r))
			} else {
				out = utf8.AppendRune(out, r)
			}
		}
		out = append(out, '\n')
	}
	out = terminal.AppendRewind(out, b.height)
	b.out = out

	_, err := w.Write(out)
	return err
}

// String returns the printed lines without the rewind sequence
func (b *Buffer) String() string {
	if b.cells == nil {
		return ""
	}
	out := make([]rune, 0, (b.width+1)*b.height)
	for y := 0; y < b.height; y++ {
		out = append(out, b.cells[y*b.width:(y+1)*b.width]...)
		out = append(out, '\n')
	}
	return string(out)
}

// Destroy releases the backing storage; later writes are ignored and
// Render returns ErrDestroyed. Safe to call multiple times
func (b *Buffer) Destroy() {
	b.cells = nil
	b.out = nil
}

// Destroyed reports whether Destroy has been called
func (b *Buffer) Destroyed() bool {
	return b.cells == nil
}

var _ terminal.Frame = (*Buffer)(nil)
