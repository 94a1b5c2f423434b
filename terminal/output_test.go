package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// gridFrame is a minimal Frame over fixed lines
type gridFrame struct {
	lines []string
}

func (g gridFrame) Size() (int, int) {
	if len(g.lines) == 0 {
		return 0, 0
	}
	return len(g.lines[0]), len(g.lines)
}

func (g gridFrame) Row(y int) []rune {
	return []rune(g.lines[y])
}

func (g gridFrame) Render(w io.Writer) error {
	var out []byte
	for _, l := range g.lines {
		out = append(out, l...)
		out = append(out, '\n')
	}
	out = AppendRewind(out, len(g.lines))
	_, err := w.Write(out)
	return err
}

type failFrame struct{ gridFrame }

func (failFrame) Render(io.Writer) error { return errors.New("render failed") }

func TestAppendCursorPrevLine(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "\x1b[1F"},
		{10, "\x1b[10F"},
		{1234, "\x1b[1234F"},
		{0, "\x1b[1F"},
	}

	for _, tt := range tests {
		got := string(AppendCursorPrevLine(nil, tt.n))
		if got != tt.want {
			t.Errorf("n=%d: expected %q, got %q", tt.n, tt.want, got)
		}
	}
}

func TestAppendRewind(t *testing.T) {
	got := string(AppendRewind([]byte("ab\n"), 9))
	if got != "ab\n\x1b[10F\n" {
		t.Errorf("Expected rewind of height+1 followed by newline, got %q", got)
	}
}

func TestStreamPresent(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	// Non-terminal writers never receive cursor visibility sequences
	if buf.Len() != 0 {
		t.Errorf("Expected no output after Init on a non-terminal, got %q", buf.String())
	}

	f := gridFrame{lines: []string{"ab", "cd"}}
	if err := s.Present(f); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	if err := s.Present(f); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	frame := "ab\ncd\n\x1b[3F\n"
	if buf.String() != frame+frame {
		t.Errorf("Expected two frames %q, got %q", frame+frame, buf.String())
	}
	if s.Frames() != 2 {
		t.Errorf("Expected 2 frames, got %d", s.Frames())
	}
}

func TestStreamFini(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)
	s.Init()
	s.Fini()
	s.Fini()

	if err := s.Present(gridFrame{lines: []string{"x"}}); !errors.Is(err, ErrFinalized) {
		t.Errorf("Expected ErrFinalized after Fini, got %v", err)
	}
	if strings.Contains(buf.String(), "x") {
		t.Error("Expected no frame written after Fini")
	}
}

func TestStreamRenderError(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)

	err := s.Present(failFrame{gridFrame{lines: []string{"x"}}})
	if err == nil {
		t.Fatal("Expected render error to propagate")
	}
	if s.Frames() != 0 {
		t.Errorf("Expected failed frame not counted, got %d", s.Frames())
	}
}

func TestEmergencyResetRestoresCursor(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	if !bytes.Contains(buf.Bytes(), csiCursorShow) {
		t.Error("Expected cursor show sequence")
	}
	if !bytes.Contains(buf.Bytes(), csiSGR0) {
		t.Error("Expected SGR reset sequence")
	}
	if bytes.Contains(buf.Bytes(), []byte("\x1bc")) {
		t.Error("Expected no full terminal reset, it would erase the scrollback")
	}
}
