package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/larekshop/storefront/pkg/logger"
	"go.uber.org/multierr"
)

// Handler reacts to a dispatched event.
type Handler func(Event)

// Publisher is the emit-only face of the bus, handed to surfaces and state
// holders so they cannot register handlers.
type Publisher interface {
	Emit(Event) error
}

type registration struct {
	id uint64
	fn Handler
}

// Bus is a synchronous in-process publish/subscribe dispatcher. Handlers for
// one kind run in registration order; wildcard handlers run after the exact
// matches, in their own registration order. Emit may be called from inside a
// handler; the nested dispatch runs to completion first.
type Bus struct {
	mu       sync.Mutex
	seq      uint64
	handlers map[Kind][]registration
	log      *logger.Logger
}

// NewBus builds an empty bus. The logger may be nil.
func NewBus(log *logger.Logger) *Bus {
	return &Bus{
		handlers: make(map[Kind][]registration),
		log:      log,
	}
}

// Subscription identifies one registered handler for later cancellation.
type Subscription struct {
	bus  *Bus
	kind Kind
	id   uint64
}

// Cancel deregisters the handler. Safe to call more than once.
func (s Subscription) Cancel() {
	if s.bus == nil {
		return
	}
	s.bus.off(s.kind, s.id)
}

// On registers a handler for the given kind, or for every kind when the
// wildcard is used.
func (b *Bus) On(kind Kind, fn Handler) Subscription {
	if fn == nil {
		return Subscription{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	id := b.seq
	b.handlers[kind] = append(b.handlers[kind], registration{id: id, fn: fn})
	return Subscription{bus: b, kind: kind, id: id}
}

func (b *Bus) off(kind Kind, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	regs := b.handlers[kind]
	for i, reg := range regs {
		if reg.id == id {
			b.handlers[kind] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Emit dispatches the event synchronously to every matching handler. A
// panicking handler is recovered and reported; remaining handlers still run.
// The combined per-handler failure is returned for callers that care.
func (b *Bus) Emit(evt Event) error {
	if evt == nil {
		return nil
	}
	kind := evt.EventKind()

	b.mu.Lock()
	matched := make([]registration, 0, len(b.handlers[kind])+len(b.handlers[KindAny]))
	matched = append(matched, b.handlers[kind]...)
	if kind != KindAny {
		matched = append(matched, b.handlers[KindAny]...)
	}
	b.mu.Unlock()

	var errs []error
	for _, reg := range matched {
		if err := b.invoke(reg.fn, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}

func (b *Bus) invoke(fn Handler, evt Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("handler for %s panicked: %v", evt.EventKind(), rec)
			if b.log != nil {
				ctx := b.log.WithEventKind(context.Background(), string(evt.EventKind()))
				b.log.Error(ctx, "event handler panicked", err)
			}
		}
	}()
	fn(evt)
	return nil
}
