// Package terminal writes character frames to a terminal.
//
// Targets:
//   - Stream: line-oriented output on any io.Writer, redrawn in place by
//     rewinding the cursor after every frame
//   - CellScreen: full-screen output on a tcell screen
//
// Stream bypasses terminfo entirely and emits direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
