package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// CellScreen presents frames on a full-screen tcell surface, centered
type CellScreen struct {
	screen tcell.Screen
	style  tcell.Style

	mu          sync.Mutex
	initialized bool
	finalized   bool
	doneCh      chan struct{}
}

// NewCellScreen wraps an existing tcell screen; Init still has to be called
func NewCellScreen(screen tcell.Screen) *CellScreen {
	return &CellScreen{
		screen: screen,
		style:  tcell.StyleDefault,
		doneCh: make(chan struct{}),
	}
}

// OpenCellScreen creates a screen on the controlling terminal
func OpenCellScreen() (*CellScreen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewCellScreen(screen), nil
}

// Init enters full-screen mode and hides the cursor
func (c *CellScreen) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := c.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	c.screen.HideCursor()
	c.screen.SetStyle(c.style)
	c.screen.Clear()
	c.initialized = true
	return nil
}

// Present draws the frame centered on the screen
func (c *CellScreen) Present(f Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.finalized {
		return ErrFinalized
	}

	width, height := f.Size()
	sw, sh := c.screen.Size()
	ox := max((sw-width)/2, 0)
	oy := max((sh-height)/2, 0)

	for y := 0; y < height; y++ {
		for x, r := range f.Row(y) {
			c.screen.SetContent(ox+x, oy+y, r, nil, c.style)
		}
	}
	c.screen.Show()
	return nil
}

// WatchQuit polls input until the screen is finalized and calls quit on
// Ctrl-C, Escape or q. In raw mode Ctrl-C arrives as a key, not SIGINT
// Blocks; run it on its own goroutine
func (c *CellScreen) WatchQuit(quit func()) {
	defer close(c.doneCh)

	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit()
			}
		case *tcell.EventResize:
			c.mu.Lock()
			if !c.finalized {
				c.screen.Clear()
				c.screen.Sync()
			}
			c.mu.Unlock()
		}
	}
}

// Fini restores the terminal. Safe to call multiple times
func (c *CellScreen) Fini() {
	c.mu.Lock()
	if !c.initialized || c.finalized {
		c.mu.Unlock()
		return
	}
	c.finalized = true
	c.mu.Unlock()

	c.screen.Fini()
}

// Done is closed when the input watcher exits
func (c *CellScreen) Done() <-chan struct{} {
	return c.doneCh
}
