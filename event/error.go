package event

import (
	"errors"
	"fmt"
)

var (
	// ErrEventNil event arg is nil
	ErrEventNil = errors.New("event is nil")

	// ErrKindEmpty event has an empty kind
	ErrKindEmpty = errors.New("event kind is empty")

	// ErrListenerNil listener arg is nil
	ErrListenerNil = errors.New("listener is nil")

	// ErrListenerIncomparable listener is not comparable, so it could never be removed
	ErrListenerIncomparable = errors.New("listener is incomparable")

	// ErrBusClosed bus is closed
	ErrBusClosed = errors.New("bus is closed")
)

// NoListenerError no listener is registered for the event kind.
type NoListenerError struct {
	Kind string
}

func (e NoListenerError) Error() string {
	return fmt.Sprintf("no listener for event kind %q", e.Kind)
}
