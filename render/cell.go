package render

import (
	"github.com/lixenwraith/raysphere/terminal"
)

// Cell is an alias to terminal.Cell so frames hand off to sinks without copying
type Cell = terminal.Cell

// BlankCell is the uncolored space used for background pixels
var BlankCell = Cell{Rune: ' '}
