package display

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/model"
)

const (
	// MinWidth and MinHeight are the smallest surface the panel fits on.
	MinWidth  = 75
	MinHeight = 15

	boxWidth  = 75
	boxHeight = 15
	boxTop    = 1
	boxLeft   = 2

	rpmBarLength   = 30
	pedalBarHeight = 10
	pedalBarWidth  = 2

	throttleCol = 50
	brakeCol    = 63
	wearCol     = 30
)

// Renderer draws one Snapshot into a Surface.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render clears the surface and draws the telemetry panel. It returns false
// without drawing the panel when the surface is below the minimum size; the
// caller must treat that as a request to stop.
func (r *Renderer) Render(s Surface, snap *model.Snapshot) bool {
	s.Clear()

	width, height := s.Size()
	if width < MinWidth || height < MinHeight {
		s.Put(0, 0, "Terminal too small. Please resize and try again.", ColorNeutral)
		s.Show()
		return false
	}

	r.drawBox(s)

	// put writes in panel coordinates
	put := func(row, col int, text string, color Color) {
		s.Put(boxTop+row, boxLeft+col, text, color)
	}

	put(1, 2, fmt.Sprintf("Speed: %d km/h", snap.Speed), ColorNeutral)
	put(2, 2, fmt.Sprintf("Gear: %d", snap.Gear), ColorNeutral)
	r.drawRPMBar(put, 3, 2, snap.RPM, snap.MaxRPM)

	put(6, 2, fmt.Sprintf("G-Force: %.2f", snap.GForce), ColorNeutral)
	put(7, 2, fmt.Sprintf("Fuel: %.2f%%", snap.Fuel), ColorNeutral)

	for i, temp := range snap.TireTemps {
		color := tempPalette.Color(Classify(temp, tempWarnAt, tempCritAt))
		put(9+i, 2, fmt.Sprintf("%s Temp: %d°C", model.TireLabels[i], temp), color)
	}
	for i, wear := range snap.TireWear {
		color := wearPalette.Color(Classify(wear, wearWarnAt, wearCritAt))
		put(9+i, wearCol, fmt.Sprintf("%s Wear: %d%%", model.TireLabels[i], wear), color)
	}

	r.drawPedalBar(put, 3, throttleCol, "Throttle:", snap.Throttle, ColorGreen)
	r.drawPedalBar(put, 3, brakeCol, "Brake:", snap.Brake, ColorRed)

	s.Show()
	return true
}

func (r *Renderer) drawBox(s Surface) {
	s.Put(boxTop, boxLeft, "┌", ColorNeutral)
	s.Put(boxTop, boxLeft+boxWidth-1, "┐", ColorNeutral)
	s.Put(boxTop+boxHeight-1, boxLeft, "└", ColorNeutral)
	s.Put(boxTop+boxHeight-1, boxLeft+boxWidth-1, "┘", ColorNeutral)
	for col := 1; col < boxWidth-1; col++ {
		s.Put(boxTop, boxLeft+col, "─", ColorNeutral)
		s.Put(boxTop+boxHeight-1, boxLeft+col, "─", ColorNeutral)
	}
	for row := 1; row < boxHeight-1; row++ {
		s.Put(boxTop+row, boxLeft, "│", ColorNeutral)
		s.Put(boxTop+row, boxLeft+boxWidth-1, "│", ColorNeutral)
	}
}

type putFunc func(row, col int, text string, color Color)

// drawRPMBar draws the horizontal rev gauge. The fill is deliberately not
// clamped: values above maxRPM overfill the fixed-width bar past the
// closing bracket, matching the historical behavior.
func (r *Renderer) drawRPMBar(put putFunc, row, col, rpm, maxRPM int) {
	fill := int(float64(rpm) / float64(maxRPM) * rpmBarLength)
	color := rpmPalette.Color(Classify(rpm, rpmWarnAt, rpmCritAt))

	put(row, col, "[", ColorNeutral)
	for i := 0; i < rpmBarLength; i++ {
		put(row, col+1+i, lo.Ternary(i < fill, "|", " "), color)
	}
	put(row, col+1+rpmBarLength, "]", ColorNeutral)
	put(row, col+1+rpmBarLength+2, fmt.Sprintf("%d RPM", rpm), color)
}

// drawPedalBar draws a vertical 0..100 gauge filling bottom-up. When the
// gauge would not fit the panel it is skipped silently, leaving the panel
// untouched at that spot.
func (r *Renderer) drawPedalBar(put putFunc, row, col int, label string, value int, color Color) {
	if row+pedalBarHeight >= boxHeight || col+pedalBarWidth >= boxWidth {
		return
	}
	fill := int(float64(value) / 100 * pedalBarHeight)

	put(row, col, label, ColorNeutral)
	barCol := col + len(label) + 1
	for i := 0; i < pedalBarHeight; i++ {
		put(row+pedalBarHeight-i-1, barCol, lo.Ternary(i < fill, "|", " "), color)
	}
}
