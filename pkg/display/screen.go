package display

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Screen is the tcell-backed Surface used for the real terminal.
type Screen struct {
	screen   tcell.Screen
	keys     chan rune
	finiOnce sync.Once
}

var _ Surface = (*Screen)(nil)

// NewScreen initializes the terminal and starts consuming its input events.
// Callers must invoke Fini to restore the terminal.
func NewScreen() (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	ts.HideCursor()

	s := &Screen{
		screen: ts,
		keys:   make(chan rune, 8),
	}
	go s.pumpEvents()
	return s, nil
}

// pumpEvents converts tcell events into the key channel PollKey reads from.
// Ends when Fini stops the event stream.
func (s *Screen) pumpEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyRune {
			select {
			case s.keys <- key.Rune():
			default:
				// loop hasn't polled yet, drop the key
			}
		}
	}
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Put(row, col int, text string, color Color) {
	style := styleFor(color)
	for i, r := range []rune(text) {
		s.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) PollKey(timeout time.Duration) (rune, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case r := <-s.keys:
		return r, true
	case <-timer.C:
		return 0, false
	}
}

// Fini restores the terminal. Safe to call more than once.
func (s *Screen) Fini() {
	s.finiOnce.Do(s.screen.Fini)
}

func styleFor(color Color) tcell.Style {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	switch color {
	case ColorGreen:
		return style.Foreground(tcell.ColorGreen)
	case ColorYellow:
		return style.Foreground(tcell.ColorYellow)
	case ColorRed:
		return style.Foreground(tcell.ColorRed)
	case ColorMagenta:
		return style.Foreground(tcell.ColorDarkMagenta)
	default:
		return style.Foreground(tcell.ColorWhite)
	}
}
