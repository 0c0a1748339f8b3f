package search

import (
	"context"

	"order-service/internal/domain"
)

// OrderIndex is the queryable secondary copy of the order store. It is a
// best-effort mirror: writes may lag the primary store and callers of Search
// accept that staleness.
type OrderIndex interface {
	Upsert(ctx context.Context, order *domain.Order) error
	Remove(ctx context.Context, id string) error
	Search(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
}

var _ OrderIndex = (*RedisIndex)(nil)
