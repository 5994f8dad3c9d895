// Package event provides domain events and an in-process event bus.
//
// A domain event is something that is unique, but does not have a lifecycle.
// Listeners subscribe by event kind; events can be flattened into storable
// descriptors with a JSON-serialized body.
package event

import (
	"context"
	"time"
)

// Event is a domain event. The identity may be explicit, for example the
// sequence number of a payment, or it could be derived from various aspects
// of the event such as where, when and what has happened.
type Event interface {

	// ID return the id of the event.
	ID() any

	// Kind return the kind of the event. Listeners subscribe by kind.
	Kind() string

	// When return the time of the event.
	When() time.Time

	// Body return the body of the event.
	Body() any

	// WithContext returns a shallow copy of the event with its context changed to ctx.
	// The provided ctx must be non-nil.
	WithContext(ctx context.Context) Event

	// Context returns the context of the event. To change the context, use WithContext.
	Context() context.Context
}

type event struct {
	id         any
	kind       string
	body       any
	occurredOn time.Time
	ctx        context.Context
}

func NewEvent(kind string, body any, id any) Event {
	return &event{id: id, kind: kind, body: body, occurredOn: time.Now()}
}

func (e *event) ID() any {
	return e.id
}

func (e *event) Kind() string {
	return e.kind
}

func (e *event) When() time.Time {
	return e.occurredOn
}

func (e *event) Body() any {
	return e.body
}

func (e *event) WithContext(ctx context.Context) Event {
	if ctx == nil {
		panic("nil context")
	}
	copied := new(event)
	*copied = *e
	copied.ctx = ctx
	return copied
}

func (e *event) Context() context.Context {
	if e.ctx != nil {
		return e.ctx
	}
	return context.Background()
}
