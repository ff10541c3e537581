// Package eventbus delivers domain events to an explicit registry of named
// handlers. Every event type a command can emit must be registered and
// validated at startup; delivery is synchronous and sequential in
// registration order.
package eventbus

import (
	"context"
	"errors"
	"filplus/pkg/logger"
	"filplus/pkg/serrors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Event is a fact emitted by a command handler.
type Event interface {
	EventType() string
}

// Envelope carries an event together with its delivery metadata.
type Envelope struct {
	Event Event
	// CausedBy is the type of the command whose handler emitted the event.
	CausedBy string
	// OccurredAt is when the event was published.
	OccurredAt time.Time
	// Sequence increases by one for every published event of a Bus.
	Sequence uint64
}

// Handler reacts to events of a single type.
type Handler interface {
	// Name identifies the handler within its event type.
	Name() string
	// EventType is the type of events the handler receives.
	EventType() string
	// Handle processes one event. It must be idempotent: events are delivered
	// again whenever the emitting command is dispatched again.
	Handle(ctx context.Context, envelope Envelope) error
}

type typedHandler[E Event] struct {
	name      string
	eventType string
	fn        func(ctx context.Context, event E, envelope Envelope) error
}

// NewHandler adapts fn into a Handler for events of type E. E must be a value
// type whose zero value reports its event type.
func NewHandler[E Event](name string, fn func(ctx context.Context, event E, envelope Envelope) error) Handler {
	var zero E

	return &typedHandler[E]{
		name:      name,
		eventType: zero.EventType(),
		fn:        fn,
	}
}

func (h *typedHandler[E]) Name() string      { return h.name }
func (h *typedHandler[E]) EventType() string { return h.eventType }

func (h *typedHandler[E]) Handle(ctx context.Context, envelope Envelope) error {
	event, ok := envelope.Event.(E)
	if !ok {
		return serrors.With(serrors.ErrInternal, "handler %s cannot handle %T", h.name, envelope.Event)
	}

	return h.fn(ctx, event, envelope)
}

// DeliveryError reports a handler that failed to process an event.
type DeliveryError struct {
	EventType string
	Handler   string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("handler %s failed on %s: %v", e.Handler, e.EventType, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Bus is an in-process event bus. Subscribe and Validate are meant to be
// called during startup; Publish is safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	sequence atomic.Uint64
	now      func() time.Time
}

// New returns an empty Bus.
func New() *Bus {
	return &Bus{
		handlers: map[string][]Handler{},
		now:      time.Now,
	}
}

// Subscribe appends h to the handlers of its event type. Registering two
// handlers with the same name for the same type is a configuration error.
func (b *Bus) Subscribe(h Handler) error {
	if h.EventType() == "" || h.Name() == "" {
		return serrors.With(serrors.ErrConfiguration, "event handler must have a name and an event type")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.handlers[h.EventType()] {
		if existing.Name() == h.Name() {
			return serrors.With(serrors.ErrConfiguration,
				"handler %s is already subscribed to %s", h.Name(), h.EventType())
		}
	}
	b.handlers[h.EventType()] = append(b.handlers[h.EventType()], h)

	return nil
}

// Validate checks that every given event type has at least one handler.
func (b *Bus) Validate(eventTypes ...string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var missing []string
	for _, t := range eventTypes {
		if len(b.handlers[t]) == 0 {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)

		return serrors.With(serrors.ErrConfiguration,
			"no handlers subscribed to %s", strings.Join(missing, ", "))
	}

	return nil
}

// Handlers returns the names of the handlers subscribed to eventType, in
// delivery order.
func (b *Bus) Handlers(eventType string) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.handlers[eventType]))
	for _, h := range b.handlers[eventType] {
		names = append(names, h.Name())
	}

	return names
}

// Publish delivers events in order. Every handler of every event is
// attempted, even after a failure; the failures are returned joined as
// *DeliveryError values.
func (b *Bus) Publish(ctx context.Context, causedBy string, events ...Event) error {
	var errs []error
	for _, event := range events {
		envelope := Envelope{
			Event:      event,
			CausedBy:   causedBy,
			OccurredAt: b.now(),
			Sequence:   b.sequence.Add(1),
		}

		b.mu.RLock()
		handlers := b.handlers[event.EventType()]
		b.mu.RUnlock()

		if len(handlers) == 0 {
			logger.Warn(ctx, "event has no handlers",
				zap.String("eventType", event.EventType()),
				zap.String("causedBy", causedBy))

			continue
		}

		for _, h := range handlers {
			if err := deliver(ctx, h, envelope); err != nil {
				logger.Error(ctx, "event handler failed",
					zap.String("eventType", event.EventType()),
					zap.String("handler", h.Name()),
					zap.Uint64("sequence", envelope.Sequence),
					logger.Kind(err),
					zap.Error(err))
				errs = append(errs, &DeliveryError{EventType: event.EventType(), Handler: h.Name(), Err: err})
			}
		}
	}

	return errors.Join(errs...)
}

func deliver(ctx context.Context, h Handler, envelope Envelope) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = serrors.With(serrors.ErrInternal, "handler panicked: %v", r)
		}
	}()

	return h.Handle(ctx, envelope)
}
