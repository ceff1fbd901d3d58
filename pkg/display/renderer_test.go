//nolint:funlen // ok for tests
package display

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/model"
)

type cell struct {
	r     rune
	color Color
}

// fakeSurface records every cell written, good enough to assert layout and
// colors without a terminal.
type fakeSurface struct {
	width, height int
	cells         map[[2]int]cell
	cleared       int
	shown         int
}

func newFakeSurface(width, height int) *fakeSurface {
	return &fakeSurface{
		width:  width,
		height: height,
		cells:  make(map[[2]int]cell),
	}
}

func (f *fakeSurface) Clear() {
	f.cells = make(map[[2]int]cell)
	f.cleared++
}

func (f *fakeSurface) Put(row, col int, text string, color Color) {
	for i, r := range []rune(text) {
		f.cells[[2]int{row, col + i}] = cell{r: r, color: color}
	}
}

func (f *fakeSurface) Size() (int, int) { return f.width, f.height }
func (f *fakeSurface) Show()            { f.shown++ }

func (f *fakeSurface) PollKey(timeout time.Duration) (rune, bool) {
	return 0, false
}

func (f *fakeSurface) row(row int) string {
	var sb strings.Builder
	for col := 0; col < f.width; col++ {
		if c, ok := f.cells[[2]int{row, col}]; ok {
			sb.WriteRune(c.r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// rpmBarFill counts filled cells between the brackets of the RPM bar.
func (f *fakeSurface) rpmBarFill() int {
	count := 0
	for i := 0; i < rpmBarLength; i++ {
		if c, ok := f.cells[[2]int{boxTop + 3, boxLeft + 2 + 1 + i}]; ok && c.r == '|' {
			count++
		}
	}
	return count
}

func snapshot() *model.Snapshot {
	return &model.Snapshot{MaxRPM: model.DefaultMaxRPM}
}

func TestRenderer_TooSmallSurface(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"narrow", MinWidth - 1, MinHeight},
		{"short", MinWidth, MinHeight - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFakeSurface(tt.width, tt.height)
			ok := NewRenderer().Render(s, snapshot())

			assert.False(t, ok)
			assert.Contains(t, s.row(0), "Terminal too small")
			assert.Equal(t, 1, s.shown, "notice must still be flushed")
			// no panel content
			_, hasCorner := s.cells[[2]int{boxTop, boxLeft}]
			assert.False(t, hasCorner)
		})
	}
}

func TestRenderer_DrawsPanel(t *testing.T) {
	s := newFakeSurface(100, 30)
	snap := snapshot()
	snap.Speed = 301
	snap.Gear = 7
	snap.GForce = 1.5
	snap.Fuel = 42.1234

	ok := NewRenderer().Render(s, snap)
	assert.True(t, ok)
	assert.Equal(t, 1, s.shown)

	// box corners
	assert.Equal(t, '┌', s.cells[[2]int{boxTop, boxLeft}].r)
	assert.Equal(t, '┘', s.cells[[2]int{boxTop + boxHeight - 1, boxLeft + boxWidth - 1}].r)

	assert.Contains(t, s.row(boxTop+1), "Speed: 301 km/h")
	assert.Contains(t, s.row(boxTop+2), "Gear: 7")
	assert.Contains(t, s.row(boxTop+6), "G-Force: 1.50")
	assert.Contains(t, s.row(boxTop+7), "Fuel: 42.12%")
}

func TestRenderer_RPMBarFill(t *testing.T) {
	tests := []struct {
		rpm  int
		fill int
	}{
		{0, 0},
		{7500, 15},
		{14999, 29},
		{15000, 30},
	}
	for _, tt := range tests {
		s := newFakeSurface(100, 30)
		snap := snapshot()
		snap.RPM = tt.rpm

		NewRenderer().Render(s, snap)
		assert.Equal(t, tt.fill, s.rpmBarFill(), "rpm=%d", tt.rpm)
	}
}

func TestRenderer_RPMBarColors(t *testing.T) {
	tests := []struct {
		rpm  int
		want Color
	}{
		{8000, ColorGreen},
		{10000, ColorRed},
		{12000, ColorMagenta},
	}
	for _, tt := range tests {
		s := newFakeSurface(100, 30)
		snap := snapshot()
		snap.RPM = tt.rpm

		NewRenderer().Render(s, snap)
		// first bar cell carries the tier color, bracket stays neutral
		assert.Equal(t, tt.want, s.cells[[2]int{boxTop + 3, boxLeft + 3}].color, "rpm=%d", tt.rpm)
		assert.Equal(t, ColorNeutral, s.cells[[2]int{boxTop + 3, boxLeft + 2}].color)
	}
}

func TestRenderer_TireLines(t *testing.T) {
	s := newFakeSurface(100, 30)
	snap := snapshot()
	snap.TireTemps = [4]int{100, 151, 251, 90}
	snap.TireWear = [4]int{10, 51, 76, 0}

	NewRenderer().Render(s, snap)

	assert.Contains(t, s.row(boxTop+9), "RL Temp: 100°C")
	assert.Contains(t, s.row(boxTop+12), "FR Temp: 90°C")
	assert.Contains(t, s.row(boxTop+9), "RL Wear: 10%")

	// temp colors per tier
	assert.Equal(t, ColorGreen, s.cells[[2]int{boxTop + 9, boxLeft + 2}].color)
	assert.Equal(t, ColorYellow, s.cells[[2]int{boxTop + 10, boxLeft + 2}].color)
	assert.Equal(t, ColorRed, s.cells[[2]int{boxTop + 11, boxLeft + 2}].color)
	// wear colors per tier
	assert.Equal(t, ColorGreen, s.cells[[2]int{boxTop + 9, boxLeft + wearCol}].color)
	assert.Equal(t, ColorYellow, s.cells[[2]int{boxTop + 10, boxLeft + wearCol}].color)
	assert.Equal(t, ColorRed, s.cells[[2]int{boxTop + 11, boxLeft + wearCol}].color)
}

func TestRenderer_PedalBarsFillBottomUp(t *testing.T) {
	s := newFakeSurface(100, 30)
	snap := snapshot()
	snap.Throttle = 50
	snap.Brake = 100

	NewRenderer().Render(s, snap)

	throttleBarCol := boxLeft + throttleCol + len("Throttle:") + 1
	brakeBarCol := boxLeft + brakeCol + len("Brake:") + 1

	countFilled := func(col int) int {
		count := 0
		for i := 0; i < pedalBarHeight; i++ {
			if c, ok := s.cells[[2]int{boxTop + 3 + i, col}]; ok && c.r == '|' {
				count++
			}
		}
		return count
	}
	assert.Equal(t, 5, countFilled(throttleBarCol))
	assert.Equal(t, 10, countFilled(brakeBarCol))

	// half throttle fills from the bottom: top half empty, bottom half full
	topCell := s.cells[[2]int{boxTop + 3, throttleBarCol}]
	bottomCell := s.cells[[2]int{boxTop + 3 + pedalBarHeight - 1, throttleBarCol}]
	assert.Equal(t, ' ', topCell.r)
	assert.Equal(t, '|', bottomCell.r)
	assert.Equal(t, ColorGreen, bottomCell.color)
}
