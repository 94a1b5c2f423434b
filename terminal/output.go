package terminal

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sync"
)

// ErrFinalized is returned by Present after Fini
var ErrFinalized = errors.New("terminal: output finalized")

// Stream presents frames as plain lines on a writer, rewinding the cursor
// after each frame so the next one overwrites it in place
type Stream struct {
	out    io.Writer
	writer *bufio.Writer
	tty    bool

	mu          sync.Mutex
	initialized bool
	finalized   bool
	frames      uint64
}

// NewStream creates a stream sink on out
// Cursor hiding is enabled only when out is a terminal
func NewStream(out io.Writer) *Stream {
	s := &Stream{
		out:    out,
		writer: bufio.NewWriterSize(out, 131072), // 128KB buffer, one write per frame
	}
	if f, ok := out.(*os.File); ok {
		s.tty = IsTerminal(f)
	}
	return s
}

// Init hides the cursor on terminals. Safe to call multiple times
func (s *Stream) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if s.tty {
		s.writer.Write(csiCursorHide)
		if err := s.writer.Flush(); err != nil {
			return err
		}
	}
	s.initialized = true
	return nil
}

// Present writes one complete frame and flushes it
func (s *Stream) Present(f Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return ErrFinalized
	}
	if err := f.Render(s.writer); err != nil {
		return err
	}
	if err := s.writer.Flush(); err != nil {
		return err
	}
	s.frames++
	return nil
}

// Frames returns the number of frames presented
func (s *Stream) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Fini restores the cursor. Safe to call multiple times
func (s *Stream) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return
	}
	if s.tty && s.initialized {
		s.writer.Write(csiCursorShow)
		s.writer.Write(csiSGR0)
	}
	s.writer.Flush()
	s.finalized = true
}
