package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/log"
	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/model"
)

// DefaultAddr is the listen address the game sends to out of the box.
const DefaultAddr = ":20777"

const defaultBufferSize = 64

// Source listens on a UDP socket for F1 2018 telemetry packets and
// publishes decoded events on a channel.
type Source struct {
	addr    string
	bufSize int
	l       *log.Logger
}

type Option func(*Source)

func WithAddr(addr string) Option {
	return func(s *Source) {
		s.addr = addr
	}
}

func WithBufferSize(size int) Option {
	return func(s *Source) {
		s.bufSize = size
	}
}

func WithLogger(arg *log.Logger) Option {
	return func(s *Source) {
		s.l = arg
	}
}

func NewSource(opts ...Option) *Source {
	ret := &Source{
		addr:    DefaultAddr,
		bufSize: defaultBufferSize,
		l:       log.Default().Named("telemetry"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Run binds the socket and starts the read goroutine. The returned channel
// is closed when the context is canceled or the socket fails. When the
// consumer lags, events are dropped rather than blocking the reader.
func (s *Source) Run(ctx context.Context) (<-chan model.Event, error) {
	conn, err := net.ListenPacket("udp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	s.l.Info("listening for telemetry", log.String("addr", s.addr))

	events := make(chan model.Event, s.bufSize)
	go func() {
		// unblock the pending read on cancellation
		<-ctx.Done()
		conn.Close()
	}()
	go s.readPackets(ctx, conn, events)
	return events, nil
}

func (s *Source) readPackets(
	ctx context.Context,
	conn net.PacketConn,
	events chan<- model.Event,
) {
	defer close(events)
	buf := make([]byte, model.MaxPacketSize)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() == nil {
				s.l.Error("reading telemetry packet", log.ErrorField(err))
			}
			return
		}
		ev, err := Decode(buf[:n])
		if err != nil {
			if !errors.Is(err, ErrUnknownPacket) {
				s.l.Debug("discarding malformed packet",
					log.Int("size", n), log.ErrorField(err))
			}
			continue
		}
		select {
		case events <- ev:
		default:
			s.l.Debug("consumer lagging, dropping event",
				log.Uint8("kind", uint8(ev.Kind)))
		}
	}
}
