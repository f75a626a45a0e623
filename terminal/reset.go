package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if a sink cannot be closed normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
