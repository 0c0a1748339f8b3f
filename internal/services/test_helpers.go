package services

import (
	"time"

	"order-service/internal/domain"
)

func CreateMockOrder(id string, status domain.OrderStatus, items ...domain.OrderItem) *domain.Order {
	return &domain.Order{
		ID:        id,
		Status:    status,
		Items:     items,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func CreateMockItem(name string, quantity int, price float64) domain.OrderItem {
	return domain.OrderItem{
		Name:     name,
		Quantity: quantity,
		Price:    price,
	}
}

const (
	TestOrderID      = "f7a3c9e2-4b1d-4e8a-9c6f-2d5b8a1e0c73"
	TestItemName     = "Test Product"
	TestItemQuantity = 2
	TestItemPrice    = 10.0
)
