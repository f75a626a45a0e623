package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Control is a user request raised by an interactive sink
type Control uint8

const (
	ControlQuit Control = iota
	ControlPause
	ControlResize
)

func (c Control) String() string {
	switch c {
	case ControlQuit:
		return "quit"
	case ControlPause:
		return "pause"
	case ControlResize:
		return "resize"
	}
	return "unknown"
}

// TcellSink presents frames on a full-screen tcell screen
// The grid is centered; cells outside the screen are clipped
type TcellSink struct {
	screen tcell.Screen

	controls chan Control
	pollOnce sync.Once
	finiOnce sync.Once
}

// NewTcellSink initializes screen and wraps it
func NewTcellSink(screen tcell.Screen) (*TcellSink, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: tcell init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return &TcellSink{
		screen:   screen,
		controls: make(chan Control, 16),
	}, nil
}

// NewTcellScreenSink creates a sink on the process terminal
func NewTcellScreenSink() (*TcellSink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: tcell screen: %w", err)
	}
	return NewTcellSink(screen)
}

// Size returns the current screen dimensions
func (s *TcellSink) Size() (width, height int) {
	return s.screen.Size()
}

// Present clears the screen, draws the grid and shows it
func (s *TcellSink) Present(g Grid) error {
	s.screen.Clear()

	width, height := g.Size()
	sw, sh := s.screen.Size()
	offX := max(0, (sw-width)/2)
	offY := max(0, (sh-height)/2)

	for y := 0; y < height && offY+y < sh; y++ {
		row := g.Row(y)
		for x := 0; x < width && x < len(row) && offX+x < sw; x++ {
			c := row[x]
			s.screen.SetContent(offX+x, offY+y, c.Glyph(), nil, CellStyle(c))
		}
	}

	s.screen.Show()
	return nil
}

// CellStyle maps a cell to a tcell style
func CellStyle(c Cell) tcell.Style {
	style := tcell.StyleDefault
	if c.Attrs&AttrFgColor != 0 {
		style = style.Foreground(RGBToTcell(c.Fg))
	}
	if c.Attrs&AttrBgColor != 0 {
		style = style.Background(RGBToTcell(c.Bg))
	}
	if c.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	if c.Attrs&AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Controls starts the input poller on first call and returns its channel
// The channel closes once the screen is finalized
func (s *TcellSink) Controls() <-chan Control {
	s.pollOnce.Do(func() {
		go s.poll()
	})
	return s.controls
}

func (s *TcellSink) poll() {
	defer close(s.controls)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		ctl, ok := controlFor(ev)
		if !ok {
			continue
		}
		if ctl == ControlResize {
			s.screen.Sync()
		}
		select {
		case s.controls <- ctl:
		default:
		}
	}
}

func controlFor(ev tcell.Event) (Control, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ControlQuit, true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return ControlQuit, true
			case ' ', 'p':
				return ControlPause, true
			}
		}
	case *tcell.EventResize:
		return ControlResize, true
	}
	return 0, false
}

// Close finalizes the screen; safe to call more than once
func (s *TcellSink) Close() error {
	s.finiOnce.Do(s.screen.Fini)
	return nil
}
