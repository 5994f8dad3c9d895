package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type Order struct {
	Base
	Number string
}

func NewOrder(number string) (*Order, error) {
	order := &Order{Number: number}
	if err := order.AssignIdentity(); err != nil {
		return nil, err
	}
	return order, nil
}

func TestAssignIdentity(t *testing.T) {
	var order Order
	assert.False(t, order.HasIdentity())
	assert.Equal(t, uuid.Nil, order.Identity())

	err := order.AssignIdentity()
	assert.NoError(t, err)
	assert.True(t, order.HasIdentity())
	assert.NotEqual(t, uuid.Nil, order.Identity())
}

func TestAssignIdentityTwice(t *testing.T) {
	var order Order
	assert.NoError(t, order.AssignIdentity())
	id := order.Identity()

	err := order.AssignIdentity()
	assert.ErrorIs(t, err, ErrIdentityEstablished)
	assert.Equal(t, id, order.Identity())
}

func TestDistinctIdentities(t *testing.T) {
	a, err := NewOrder("A-1")
	assert.NoError(t, err)
	b, err := NewOrder("A-1")
	assert.NoError(t, err)
	assert.NotEqual(t, a.Identity(), b.Identity())
	assert.False(t, a.SameIdentityAs(&b.Base))
	assert.True(t, a.SameIdentityAs(&a.Base))
}

func TestSameIdentityAs(t *testing.T) {
	var a, b Order
	assert.False(t, a.SameIdentityAs(&b.Base), "entities without identity are never the same")
	assert.False(t, a.SameIdentityAs(nil))

	assert.NoError(t, a.AssignIdentity())
	assert.NoError(t, b.AssignIdentity())
	assert.False(t, a.SameIdentityAs(&b.Base))
}
