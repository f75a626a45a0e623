// Package terminal presents rendered frames on a terminal.
//
// Sinks:
//   - ANSISink: clear-screen + rows of ANSI text on any io.Writer
//   - TcellSink: full-screen tcell screen with key controls
//
// Colored cells encode as 24-bit or xterm-256 backgrounds/foregrounds.
// EmergencyReset restores a sane terminal from panic recovery.
package terminal
