// Package aggregate provides the aggregate-root base of the domain model.
package aggregate

import (
	"golang.org/x/exp/slices"

	"github.com/go-leo/domain/entity"
	"github.com/go-leo/domain/event"
)

// Aggregate is a cluster of domain objects treated as a single unit, reached
// through its root entity.
type Aggregate[T any, ID any] interface {
	Root() entity.Entity[T, ID]
}

// Root is the base of an aggregate root: an entity that records the domain
// events raised by its behavior until a caller collects them for publication.
//
// Like identity assignment, recording is expected to happen on a single
// goroutine owning the aggregate.
type Root struct {
	entity.Base
	changes []event.Event
}

// Record remembers events raised by aggregate behavior.
func (r *Root) Record(events ...event.Event) {
	r.changes = append(r.changes, events...)
}

// Changes returns a copy of the recorded events, oldest first.
func (r *Root) Changes() []event.Event {
	return slices.Clone(r.changes)
}

// ClearChanges forgets the recorded events, typically after publication.
func (r *Root) ClearChanges() {
	r.changes = nil
}
