package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderPatch_Apply(t *testing.T) {
	processing := StatusProcessing

	base := func() *Order {
		return &Order{
			ID:     "o-1",
			Status: StatusPending,
			Items: []OrderItem{
				{ID: 10, OrderID: "o-1", Name: "A", Quantity: 2, Price: 10},
			},
		}
	}

	t.Run("empty patch leaves the order untouched", func(t *testing.T) {
		o := base()
		OrderPatch{}.Apply(o)
		assert.Equal(t, StatusPending, o.Status)
		assert.Len(t, o.Items, 1)
		assert.Equal(t, "A", o.Items[0].Name)
	})

	t.Run("status only", func(t *testing.T) {
		o := base()
		OrderPatch{Status: &processing}.Apply(o)
		assert.Equal(t, StatusProcessing, o.Status)
		assert.Len(t, o.Items, 1)
	})

	t.Run("items replace the whole set and rebind to the order", func(t *testing.T) {
		o := base()
		items := []OrderItem{
			{Name: "B", Quantity: 1, Price: 5},
			{Name: "B", Quantity: 3, Price: 5},
		}
		OrderPatch{Items: &items}.Apply(o)

		assert.Len(t, o.Items, 2)
		for _, it := range o.Items {
			assert.Zero(t, it.ID)
			assert.Equal(t, "o-1", it.OrderID)
		}
		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("explicit empty item list clears items", func(t *testing.T) {
		o := base()
		items := []OrderItem{}
		OrderPatch{Items: &items}.Apply(o)
		assert.Empty(t, o.Items)
	})
}

func TestNewOrderEvents(t *testing.T) {
	o := &Order{
		ID:     "o-2",
		Status: StatusShipped,
		Items:  []OrderItem{{Name: "A", Quantity: 1, Price: 2.5}},
	}

	created := NewOrderCreatedEvent(o)
	assert.Equal(t, "o-2", created.ID)
	assert.Equal(t, StatusShipped, created.Status)
	assert.Equal(t, o.Items, created.Items)

	updated := NewOrderStatusUpdatedEvent(o)
	assert.Equal(t, "o-2", updated.ID)
	assert.Equal(t, StatusShipped, updated.Status)
}
