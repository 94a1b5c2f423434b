// Package render drives the frame pipeline: pace, light, shade, present.
package render

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/sphere/clock"
	"github.com/lixenwraith/sphere/core"
	"github.com/lixenwraith/sphere/scene"
	"github.com/lixenwraith/sphere/screen"
	"github.com/lixenwraith/sphere/shade"
)

// State of the render loop
type State int32

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// ErrStopped is returned by Run on a loop that has already stopped
var ErrStopped = errors.New("render: loop stopped")

// Config wires the loop collaborators; all fields are required
type Config struct {
	Buffer *screen.Buffer
	Shader *shade.Shader
	Sphere scene.Sphere
	Orbit  scene.Orbit
	Clock  *clock.Clock
	Sink   Sink
}

// Loop owns the character buffer and renders one frame per clock tick
// until shutdown is requested
type Loop struct {
	buffer *screen.Buffer
	shader *shade.Shader
	sphere scene.Sphere
	orbit  scene.Orbit
	clock  *clock.Clock
	sink   Sink

	state    atomic.Int32
	stopCh   chan struct{}
	stopOnce sync.Once
	frames   atomic.Uint64
}

// NewLoop creates a loop in the running state
func NewLoop(cfg Config) (*Loop, error) {
	switch {
	case cfg.Buffer == nil:
		return nil, errors.New("render: nil buffer")
	case cfg.Shader == nil:
		return nil, errors.New("render: nil shader")
	case cfg.Clock == nil:
		return nil, errors.New("render: nil clock")
	case cfg.Sink == nil:
		return nil, errors.New("render: nil sink")
	}

	l := &Loop{
		buffer: cfg.Buffer,
		shader: cfg.Shader,
		sphere: cfg.Sphere,
		orbit:  cfg.Orbit,
		clock:  cfg.Clock,
		sink:   cfg.Sink,
		stopCh: make(chan struct{}),
	}
	l.state.Store(int32(StateRunning))
	return l, nil
}

// State returns the current loop state
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Frames returns the number of animation frames presented, excluding the
// final blank frame
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Stop requests shutdown. Safe to call from any goroutine, any number of times
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})
}

// DrawFrame clears the buffer and shades every cell for orbit phase theta
func (l *Loop) DrawFrame(theta float64) {
	l.buffer.Clear()
	light := l.orbit.Position(theta)

	width, height := l.buffer.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			l.buffer.Write(x, y, l.shader.Shade(x, y, l.sphere, light))
		}
	}
}

// Run renders frames until ctx is cancelled or Stop is called, then emits
// one blank frame, releases the buffer and returns
// Cancellation is observed once per frame and during the clock wait,
// never in the middle of a frame
func (l *Loop) Run(ctx context.Context) (err error) {
	if l.State() != StateRunning {
		return ErrStopped
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	core.Go(func() {
		select {
		case <-l.stopCh:
			cancel()
		case <-ctx.Done():
		}
	})

	width, height := l.buffer.Size()
	log.Printf("render: started %dx%d radius=%d axis=%v tick=%v",
		width, height, l.sphere.Radius, l.orbit.Axis, l.clock.Tick())

	defer func() {
		if shutdownErr := l.shutdown(); err == nil {
			err = shutdownErr
		}
		log.Printf("render: stopped after %d frames, %d clock resyncs", l.Frames(), l.clock.Resyncs())
	}()

	for {
		select {
		case <-l.stopCh:
			return nil
		default:
		}
		if ctx.Err() != nil {
			return nil
		}

		l.buffer.Clear()

		theta, advErr := l.clock.Advance(ctx)
		if advErr != nil {
			if errors.Is(advErr, context.Canceled) || errors.Is(advErr, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("render: advance clock: %w", advErr)
		}

		l.DrawFrame(theta)

		if presentErr := l.sink.Present(l.buffer); presentErr != nil {
			return fmt.Errorf("render: present frame %d: %w", l.Frames()+1, presentErr)
		}
		l.frames.Add(1)
	}
}

// shutdown leaves a blank frame on the output and releases the buffer
func (l *Loop) shutdown() error {
	defer l.state.Store(int32(StateStopped))

	l.buffer.Clear()
	err := l.sink.Present(l.buffer)
	l.buffer.Destroy()
	if err != nil {
		log.Printf("render: final frame: %v", err)
		return fmt.Errorf("render: present final frame: %w", err)
	}
	return nil
}
