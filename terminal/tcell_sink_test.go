package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimSink(t *testing.T, w, h int) (*TcellSink, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	sink, err := NewTcellSink(screen)
	if err != nil {
		t.Fatalf("NewTcellSink: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(func() { sink.Close() })
	return sink, screen
}

func TestTcellSinkPresent(t *testing.T) {
	sink, screen := newSimSink(t, 3, 2)

	g := newTestGrid(
		[]Cell{{Rune: '#'}, navy, {Rune: '.'}},
		[]Cell{{}, {Rune: ':'}, navy},
	)
	if err := sink.Present(g); err != nil {
		t.Fatalf("Present: %v", err)
	}

	tests := []struct {
		x, y  int
		want  rune
		bg    tcell.Color
		hasBg bool
	}{
		{0, 0, '#', tcell.ColorDefault, false},
		{1, 0, ' ', RGBToTcell(RGB{0, 0, 60}), true},
		{2, 0, '.', tcell.ColorDefault, false},
		{0, 1, ' ', tcell.ColorDefault, false},
		{1, 1, ':', tcell.ColorDefault, false},
		{2, 1, ' ', RGBToTcell(RGB{0, 0, 60}), true},
	}
	for _, tt := range tests {
		r, _, style, _ := screen.GetContent(tt.x, tt.y)
		if r != tt.want {
			t.Errorf("(%d,%d) rune = %q, want %q", tt.x, tt.y, r, tt.want)
		}
		_, bg, _ := style.Decompose()
		if tt.hasBg && bg != tt.bg {
			t.Errorf("(%d,%d) bg = %v, want %v", tt.x, tt.y, bg, tt.bg)
		}
		if !tt.hasBg && bg != tcell.ColorDefault {
			t.Errorf("(%d,%d) bg = %v, want default", tt.x, tt.y, bg)
		}
	}
}

func TestTcellSinkCentersAndClips(t *testing.T) {
	sink, screen := newSimSink(t, 5, 1)
	if w, h := sink.Size(); w != 5 || h != 1 {
		t.Fatalf("Size() = %dx%d, want 5x1", w, h)
	}

	g := newTestGrid([]Cell{{Rune: 'a'}, {Rune: 'b'}, {Rune: 'c'}})
	if err := sink.Present(g); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if r, _, _, _ := screen.GetContent(1, 0); r != 'a' {
		t.Errorf("centered start = %q, want 'a'", r)
	}

	// Larger than screen: clipped at the right edge, no panic
	wide := newTestGrid([]Cell{{Rune: '1'}, {Rune: '2'}, {Rune: '3'}, {Rune: '4'}, {Rune: '5'}, {Rune: '6'}, {Rune: '7'}})
	if err := sink.Present(wide); err != nil {
		t.Fatalf("Present wide: %v", err)
	}
	if r, _, _, _ := screen.GetContent(4, 0); r != '5' {
		t.Errorf("clipped edge = %q, want '5'", r)
	}
}

func TestCellStyle(t *testing.T) {
	fg, bg, attrs := CellStyle(Cell{Rune: 'x', Fg: RGB{1, 2, 3}, Attrs: AttrFgColor | AttrBold}).Decompose()
	if fg != RGBToTcell(RGB{1, 2, 3}) {
		t.Errorf("fg = %v", fg)
	}
	if bg != tcell.ColorDefault {
		t.Errorf("bg = %v, want default", bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold not mapped")
	}
}

func TestControlString(t *testing.T) {
	for c, want := range map[Control]string{ControlQuit: "quit", ControlPause: "pause", ControlResize: "resize", Control(9): "unknown"} {
		if got := c.String(); got != want {
			t.Errorf("Control(%d).String() = %q, want %q", c, got, want)
		}
	}
}
