package repository

import (
	"order-service/internal/domain"
)

// OrderRepository is the primary store. Absent records are reported as a nil
// order with a nil error; every non-nil error is a persistence failure.
type OrderRepository interface {
	Create(order *domain.Order) error
	FindByID(id string) (*domain.Order, error)
	Patch(id string, patch domain.OrderPatch) (*domain.Order, error)
	Save(order *domain.Order) error
	Delete(order *domain.Order) error
}
