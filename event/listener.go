package event

import "sync"

// Listener is Event listener interface.
type Listener interface {
	// Handle handles Event logic.
	Handle(event Event) error
}

type onceListener struct {
	Listener Listener
	Once     sync.Once
}

func (listener *onceListener) Handle(event Event) error {
	var err error
	listener.Once.Do(func() {
		err = listener.Listener.Handle(event)
	})
	return err
}
