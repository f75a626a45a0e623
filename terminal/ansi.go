// @lixen: #focus{sys[term,output,ansi]}
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")

	// Color parameter prefixes inside an SGR sequence
	sgrFg256 = []byte(";38;5;")
	sgrBg256 = []byte(";48;5;")
	sgrFgRGB = []byte(";38;2;")
	sgrBgRGB = []byte(";48;2;")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeSGR emits one combined reset+style sequence for a cell
func writeSGR(w *bufio.Writer, c Cell, mode ColorMode) {
	w.Write(csi)
	w.WriteByte('0')

	style := c.Attrs & AttrStyle
	if style&AttrBold != 0 {
		w.WriteString(";1")
	}
	if style&AttrDim != 0 {
		w.WriteString(";2")
	}
	if style&AttrItalic != 0 {
		w.WriteString(";3")
	}
	if style&AttrUnderline != 0 {
		w.WriteString(";4")
	}
	if style&AttrBlink != 0 {
		w.WriteString(";5")
	}
	if style&AttrReverse != 0 {
		w.WriteString(";7")
	}

	if c.Attrs&AttrFgColor != 0 {
		writeColor(w, c.Fg, mode, sgrFgRGB, sgrFg256)
	}
	if c.Attrs&AttrBgColor != 0 {
		writeColor(w, c.Bg, mode, sgrBgRGB, sgrBg256)
	}
	w.WriteByte('m')
}

func writeColor(w *bufio.Writer, c RGB, mode ColorMode, rgbPrefix, idxPrefix []byte) {
	if mode == ColorModeTrueColor {
		w.Write(rgbPrefix)
		writeInt(w, int(c.R))
		w.WriteByte(';')
		writeInt(w, int(c.G))
		w.WriteByte(';')
		writeInt(w, int(c.B))
		return
	}
	w.Write(idxPrefix)
	writeInt(w, int(RGBTo256(c)))
}

// sameStyle reports whether b can be written without a new SGR after a
func sameStyle(a, b Cell) bool {
	if a.Attrs != b.Attrs {
		return false
	}
	if a.Attrs&AttrFgColor != 0 && a.Fg != b.Fg {
		return false
	}
	if a.Attrs&AttrBgColor != 0 && a.Bg != b.Bg {
		return false
	}
	return true
}
