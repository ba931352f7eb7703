package sink

import (
	"calsync-lab/domain/event"
	"calsync-lab/errors"
	"context"
)

// ConnSink buffers realtime messages for one websocket connection.
// The websocket writer goroutine drains Events; Consume never blocks
// the broadcasting request.
type ConnSink struct {
	Events chan event.DomainEvent
}

func NewConnSink(bufferSize int) *ConnSink {
	return &ConnSink{Events: make(chan event.DomainEvent, bufferSize)}
}

// Consume hands the event to the connection's writer. When the buffer
// is full the event is dropped and ErrSinkFull returned so the caller
// can count it; a slow reader only loses its own messages.
func (s *ConnSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrSinkFull
	}
}
