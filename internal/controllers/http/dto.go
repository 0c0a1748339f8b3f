package http

import (
	"time"

	"order-service/internal/domain"
)

type OrderItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	Items  []OrderItemRequest `json:"items" binding:"dive"`
	Status string             `json:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
}

type UpdateOrderRequest struct {
	Items  *[]OrderItemRequest `json:"items" binding:"omitempty,dive"`
	Status *string             `json:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
}

func (r CreateOrderRequest) toItems() []domain.OrderItem {
	return toItems(r.Items)
}

func (r UpdateOrderRequest) toPatch() domain.OrderPatch {
	var patch domain.OrderPatch
	if r.Status != nil {
		status := domain.OrderStatus(*r.Status)
		patch.Status = &status
	}
	if r.Items != nil {
		items := toItems(*r.Items)
		patch.Items = &items
	}
	return patch
}

func toItems(reqs []OrderItemRequest) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(reqs))
	for _, it := range reqs {
		items = append(items, domain.OrderItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return items
}

// parseDate accepts both a plain date and a full RFC 3339 timestamp.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
