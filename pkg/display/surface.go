package display

import "time"

// Color is the small palette the dashboard draws with. The mapping to
// actual terminal colors lives in the Surface implementation.
type Color int

const (
	ColorNeutral Color = iota
	ColorGreen
	ColorYellow
	ColorRed
	ColorMagenta
)

// Surface is the minimal drawing capability the renderer and the frame
// loop need from a terminal: clear, positioned colored text, size query,
// flush and single-key polling.
type Surface interface {
	Clear()
	// Put writes text starting at the given cell. Row 0 is the top line.
	Put(row, col int, text string, color Color)
	// Size returns the current surface dimensions in cells.
	Size() (width, height int)
	// Show flushes all pending writes to the terminal.
	Show()
	// PollKey waits up to timeout for a keypress and reports whether one
	// arrived. The wait bounds the frame cadence.
	PollKey(timeout time.Duration) (rune, bool)
}
