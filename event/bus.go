package event

import (
	"context"
	"errors"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-leo/gox/slicex"
	"github.com/go-leo/gox/syncx"
	"github.com/go-leo/gox/syncx/chanx"
	"golang.org/x/exp/slices"
)

type Bus interface {
	// On adds a Listener for the event kind.
	On(kind string, lis Listener) error

	// Once adds a one-time Listener for the event kind.
	Once(kind string, lis Listener) error

	// Emit synchronously calls each of the listeners registered for the kind
	// of the event, in the order they were registered.
	Emit(e Event) error

	// AsyncEmit asynchronously calls each of the listeners registered for the
	// kind of the event.
	AsyncEmit(e Event) <-chan error

	// Off removes the Listener from the listeners of the event kind.
	Off(kind string, lis Listener) error

	// OffAll removes all listeners for the event kind.
	OffAll(kind string) error

	// Close bus gracefully.
	Close(ctx context.Context) error
}

var _ Bus = (*bus)(nil)

type bus struct {
	listenerMap     sync.Map
	onceListenerMap sync.Map
	wg              sync.WaitGroup
	inShutdown      atomic.Bool // true when bus is in shutdown
	options         *option
}

func NewBus(opts ...Option) Bus {
	return &bus{
		listenerMap:     sync.Map{},
		onceListenerMap: sync.Map{},
		wg:              sync.WaitGroup{},
		inShutdown:      atomic.Bool{},
		options:         newOption(opts...),
	}
}

func (b *bus) On(kind string, lis Listener) error {
	if err := b.check(kind, lis); err != nil {
		return err
	}
	b.spin(&b.listenerMap, kind, func(listeners []Listener) ([]Listener, bool) {
		return append(slices.Clone(listeners), lis), true
	})
	return nil
}

func (b *bus) Once(kind string, lis Listener) error {
	if err := b.check(kind, lis); err != nil {
		return err
	}
	onceLis := &onceListener{Listener: lis, Once: sync.Once{}}
	b.spin(&b.onceListenerMap, kind, func(listeners []Listener) ([]Listener, bool) {
		return append(slices.Clone(listeners), onceLis), true
	})
	return nil
}

func (b *bus) Emit(e Event) error {
	if err := b.checkEvent(e); err != nil {
		return err
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	listeners := b.listeners(e.Kind())
	errs := make([]error, 0, len(listeners))
	for _, listener := range listeners {
		errs = append(errs, listener.Handle(e))
	}
	return errors.Join(errs...)
}

func (b *bus) AsyncEmit(e Event) <-chan error {
	if err := b.checkEvent(e); err != nil {
		return failedEmit(err)
	}
	if b.shuttingDown() {
		return failedEmit(ErrBusClosed)
	}
	listeners := b.listeners(e.Kind())
	if len(listeners) <= 0 {
		return failedEmit(NoListenerError{Kind: e.Kind()})
	}
	errCs := make([]<-chan error, 0, len(listeners))
	for _, listener := range listeners {
		listener := listener
		errC := make(chan error, 1)
		b.wg.Add(1)
		err := b.options.Pool.Go(func() {
			defer b.wg.Done()
			defer close(errC)
			if err := listener.Handle(e); err != nil {
				errC <- err
			}
		})
		if err != nil {
			b.wg.Done()
			errC <- err
			close(errC)
		}
		errCs = append(errCs, errC)
	}
	return chanx.Combine[error](errCs...)
}

func (b *bus) Off(kind string, lis Listener) error {
	if err := b.check(kind, lis); err != nil {
		return err
	}
	b.spin(&b.listenerMap, kind, func(listeners []Listener) ([]Listener, bool) {
		indexes := slicex.Indexes(listeners, lis)
		if len(indexes) <= 0 {
			return nil, false
		}
		return slicex.DeleteAll(listeners, indexes...), true
	})
	b.spin(&b.onceListenerMap, kind, func(listeners []Listener) ([]Listener, bool) {
		indexes := slicex.IndexesFunc(listeners, func(onceLis Listener) bool {
			return onceLis.(*onceListener).Listener == lis
		})
		if len(indexes) <= 0 {
			return nil, false
		}
		return slicex.DeleteAll(listeners, indexes...), true
	})
	return nil
}

func (b *bus) OffAll(kind string) error {
	if len(kind) <= 0 {
		return ErrKindEmpty
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	b.listenerMap.Delete(kind)
	b.onceListenerMap.Delete(kind)
	return nil
}

func (b *bus) Close(ctx context.Context) error {
	if b.inShutdown.CompareAndSwap(false, true) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-syncx.WaitNotify(&b.wg):
			return nil
		}
	}
	return ErrBusClosed
}

func (b *bus) shuttingDown() bool {
	return b.inShutdown.Load()
}

func (b *bus) check(kind string, lis Listener) error {
	if len(kind) <= 0 {
		return ErrKindEmpty
	}
	if lis == nil {
		return ErrListenerNil
	}
	if !reflect.TypeOf(lis).Comparable() {
		return ErrListenerIncomparable
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	return nil
}

func (b *bus) checkEvent(e Event) error {
	if e == nil {
		return ErrEventNil
	}
	if len(e.Kind()) <= 0 {
		return ErrKindEmpty
	}
	return nil
}

// listeners returns a snapshot of the listeners for the kind, registered
// listeners first, once-listeners after.
func (b *bus) listeners(kind string) []Listener {
	var listeners []Listener
	if value, ok := b.listenerMap.Load(kind); ok {
		listeners = append(listeners, *(value.(*[]Listener))...)
	}
	if value, ok := b.onceListenerMap.Load(kind); ok {
		listeners = append(listeners, *(value.(*[]Listener))...)
	}
	return listeners
}

// spin applies a copy-on-write update to the listener slice of the kind,
// retrying with exponential backoff when a concurrent update wins the swap.
// See https://en.wikipedia.org/wiki/Exponential_backoff.
func (b *bus) spin(listenerMap *sync.Map, kind string, apply func(listeners []Listener) ([]Listener, bool)) {
	backoff := 1
	for {
		oldVal, ok := listenerMap.Load(kind)
		if !ok {
			newListeners, changed := apply(nil)
			if !changed {
				return
			}
			if _, loaded := listenerMap.LoadOrStore(kind, &newListeners); !loaded {
				return
			}
			continue
		}
		newListeners, changed := apply(*(oldVal.(*[]Listener)))
		if !changed {
			return
		}
		if listenerMap.CompareAndSwap(kind, oldVal, &newListeners) {
			return
		}
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < 64 {
			backoff <<= 1
		}
	}
}

func failedEmit(err error) <-chan error {
	errC := make(chan error, 1)
	errC <- err
	close(errC)
	return errC
}
