package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity as explained in the DDD book.
// Entities compare by identity, not by attributes.
type Entity[T any, ID any] interface {

	// SameIdentityAs return true if the identities are the same, regardless of other attributes.
	SameIdentityAs(other T) bool

	// Identity return the identity of this entity.
	Identity() ID
}

// Identified is the part of the Entity contract the Base type satisfies on
// behalf of the concrete entity embedding it.
type Identified interface {
	Identity() uuid.UUID
}

// Base carries the identity of an entity. Concrete entities embed it and call
// AssignIdentity from their constructors.
//
// The zero value has no identity yet; Identity returns uuid.Nil until
// AssignIdentity has run.
type Base struct {
	id uuid.UUID
}

// Identity return the identity of this entity, or uuid.Nil if none has been
// assigned yet.
func (b *Base) Identity() uuid.UUID {
	return b.id
}

// HasIdentity reports whether an identity has been assigned.
func (b *Base) HasIdentity() bool {
	return b.id != uuid.Nil
}

// AssignIdentity generates a random identity and fixes it for the lifetime of
// the entity. It fails with ErrIdentityEstablished if an identity was already
// assigned; the established identity is left untouched.
//
// Assignment is expected to happen during single-threaded construction; it is
// not safe to call concurrently on the same entity.
func (b *Base) AssignIdentity() error {
	if b.id != uuid.Nil {
		return ErrIdentityEstablished
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("entity: generate identity: %w", err)
	}
	b.id = id
	return nil
}

// SameIdentityAs return true if both entities carry the same established
// identity. Entities without an identity are never the same.
func (b *Base) SameIdentityAs(other Identified) bool {
	if other == nil {
		return false
	}
	return b.id != uuid.Nil && b.id == other.Identity()
}
