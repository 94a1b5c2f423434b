package render

import (
	"github.com/lixenwraith/sphere/terminal"
)

// Sink receives every completed frame
type Sink interface {
	Present(f terminal.Frame) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(f terminal.Frame) error

// Present calls fn(f)
func (fn SinkFunc) Present(f terminal.Frame) error {
	return fn(f)
}
