package domain

import "time"

const (
	TopicOrderCreated       = "order_created"
	TopicOrderStatusUpdated = "order_status_updated"
)

const (
	EventOrderCreated   = "order_created"
	EventOrderFetched   = "order_fetched"
	EventOrderSearch    = "order_search"
	EventOrderUpdated   = "order_updated"
	EventOrderCancelled = "order_cancelled"
	EventOrderRemoved   = "order_removed"
)

type OrderCreatedEvent struct {
	ID        string      `json:"id"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	Items     []OrderItem `json:"items"`
}

type OrderStatusUpdatedEvent struct {
	ID        string      `json:"id"`
	Status    OrderStatus `json:"status"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func NewOrderCreatedEvent(o *Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		ID:        o.ID,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		Items:     o.Items,
	}
}

func NewOrderStatusUpdatedEvent(o *Order) OrderStatusUpdatedEvent {
	return OrderStatusUpdatedEvent{
		ID:        o.ID,
		Status:    o.Status,
		UpdatedAt: o.UpdatedAt,
	}
}
