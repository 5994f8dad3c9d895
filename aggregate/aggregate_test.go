package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-leo/domain/aggregate"
	"github.com/go-leo/domain/event"
)

type Order struct {
	aggregate.Root
	number string
	placed bool
}

func NewOrder(number string) (*Order, error) {
	order := &Order{number: number}
	if err := order.AssignIdentity(); err != nil {
		return nil, err
	}
	return order, nil
}

func (o *Order) Place() {
	o.placed = true
	o.Record(event.NewEvent("order.placed", o.number, o.Identity()))
}

func TestRecordChanges(t *testing.T) {
	order, err := NewOrder("A-1")
	assert.NoError(t, err)
	assert.Empty(t, order.Changes())

	order.Place()
	changes := order.Changes()
	assert.Len(t, changes, 1)
	assert.Equal(t, "order.placed", changes[0].Kind())
	assert.Equal(t, order.Identity(), changes[0].ID())
	assert.Equal(t, "A-1", changes[0].Body())

	order.ClearChanges()
	assert.Empty(t, order.Changes())
}

func TestChangesIsolated(t *testing.T) {
	order, err := NewOrder("A-1")
	assert.NoError(t, err)
	order.Place()

	changes := order.Changes()
	changes[0] = nil
	assert.NotNil(t, order.Changes()[0], "Changes hands out a copy")
}

func TestPublishChanges(t *testing.T) {
	order, err := NewOrder("A-1")
	assert.NoError(t, err)
	order.Place()

	bus := event.NewBus()
	collector := &kindCollector{}
	assert.NoError(t, bus.On("order.placed", collector))
	for _, change := range order.Changes() {
		assert.NoError(t, bus.Emit(change))
	}
	order.ClearChanges()
	assert.Equal(t, []string{"order.placed"}, collector.kinds)
}

type kindCollector struct {
	kinds []string
}

func (c *kindCollector) Handle(e event.Event) error {
	c.kinds = append(c.kinds, e.Kind())
	return nil
}
