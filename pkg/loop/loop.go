package loop

import (
	"context"
	"errors"
	"time"

	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/log"
	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/display"
	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/model"
	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/processing"
)

const (
	StateRunning = "RUNNING"
	StateStopped = "STOPPED"

	// QuitKey is the only recognized cancellation keypress.
	QuitKey = 'q'

	// DefaultPollTimeout bounds the per-tick wait for input and thereby
	// sets the minimum frame cadence.
	DefaultPollTimeout = 500 * time.Millisecond
)

// ErrSurfaceTooSmall reports that the renderer refused to draw because the
// terminal is below the minimum panel size.
var ErrSurfaceTooSmall = errors.New("drawing surface below minimum size")

// SnapshotRenderer draws a snapshot and reports whether drawing succeeded.
type SnapshotRenderer interface {
	Render(s display.Surface, snap *model.Snapshot) bool
}

// Loop is the single-threaded frame loop. It owns the processor and the
// surface for its whole lifetime; every tick drains pending events, renders
// resulting snapshots and polls for the quit key.
type Loop struct {
	events      <-chan model.Event
	processor   *processing.SnapshotProcessor
	renderer    SnapshotRenderer
	surface     display.Surface
	pollTimeout time.Duration
	state       string
	l           *log.Logger
}

type Option func(*Loop)

func WithPollTimeout(timeout time.Duration) Option {
	return func(l *Loop) {
		l.pollTimeout = timeout
	}
}

func WithLogger(arg *log.Logger) Option {
	return func(l *Loop) {
		l.l = arg
	}
}

func New(
	events <-chan model.Event,
	processor *processing.SnapshotProcessor,
	renderer SnapshotRenderer,
	surface display.Surface,
	opts ...Option,
) *Loop {
	ret := &Loop{
		events:      events,
		processor:   processor,
		renderer:    renderer,
		surface:     surface,
		pollTimeout: DefaultPollTimeout,
		state:       StateStopped,
		l:           log.Default().Named("loop"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (l *Loop) State() string { return l.state }

// Run drives the loop until the quit key is pressed, the context is
// canceled or the renderer reports a too-small surface. The loop never
// exits just because no events arrive.
func (l *Loop) Run(ctx context.Context) error {
	l.state = StateRunning
	defer func() { l.state = StateStopped }()

	for {
		if err := l.drainEvents(); err != nil {
			return err
		}
		l.surface.Show()

		if key, ok := l.surface.PollKey(l.pollTimeout); ok && key == QuitKey {
			l.l.Info("quit key pressed, stopping")
			return nil
		}
		select {
		case <-ctx.Done():
			l.l.Info("context canceled, stopping")
			return ctx.Err()
		default:
		}
	}
}

// drainEvents consumes all currently pending events without blocking and
// renders every snapshot the processor yields.
func (l *Loop) drainEvents() error {
	for {
		select {
		case ev, ok := <-l.events:
			if !ok {
				// source gone; keep rendering the last frame and wait
				// for the quit key instead of busy-looping on the
				// closed channel
				l.l.Warn("telemetry source closed")
				l.events = nil
				return nil
			}
			snap := l.processor.Process(ev)
			if snap == nil {
				continue
			}
			if !l.renderer.Render(l.surface, snap) {
				l.l.Info("surface too small, stopping",
					log.Int("minWidth", display.MinWidth),
					log.Int("minHeight", display.MinHeight))
				return ErrSurfaceTooSmall
			}
		default:
			return nil
		}
	}
}
