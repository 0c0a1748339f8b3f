package services

import (
	"context"
	"errors"
	"fmt"

	"order-service/internal/audit"
	"order-service/internal/domain"
	"order-service/internal/infra/kafka"
	"order-service/internal/infra/search"
	"order-service/internal/repository"

	"github.com/rs/zerolog"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrOrderDelivered = fmt.Errorf("%w: order already delivered, cannot cancel", ErrInvalidTransition)
	ErrOrderCancelled = fmt.Errorf("%w: order already cancelled", ErrInvalidTransition)
)

// OrderService sequences every lifecycle write across the primary store, the
// search index and the event stream. The primary store is authoritative: its
// write always comes first and its failures abort the operation. Index,
// publish and audit steps are best-effort — once the record exists, their
// failures are logged and swallowed, never surfaced to the caller.
type OrderService struct {
	repo      repository.OrderRepository
	index     search.OrderIndex
	publisher kafka.PublisherInterface
	audit     audit.Recorder
	log       zerolog.Logger
}

func NewOrderService(
	repo repository.OrderRepository,
	index search.OrderIndex,
	publisher kafka.PublisherInterface,
	recorder audit.Recorder,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		repo:      repo,
		index:     index,
		publisher: publisher,
		audit:     recorder,
		log:       log,
	}
}

type CreateOrderInput struct {
	Items  []domain.OrderItem
	Status domain.OrderStatus
}

func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}

	order := &domain.Order{
		Status: status,
		Items:  input.Items,
	}
	if err := s.repo.Create(order); err != nil {
		return nil, err
	}

	s.sideEffect("index", order.ID, func() error {
		return s.index.Upsert(ctx, order)
	})
	s.sideEffect("publish", order.ID, func() error {
		return s.publisher.Publish(ctx, domain.TopicOrderCreated, domain.NewOrderCreatedEvent(order))
	})
	s.audit.Record(domain.EventOrderCreated, map[string]any{
		"orderId": order.ID,
		"status":  order.Status,
	})

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	s.audit.Record(domain.EventOrderFetched, map[string]any{"orderId": order.ID})
	return order, nil
}

// SearchOrders reads from the index, not the primary store. Callers trade
// possible staleness for the filter expressiveness of the index.
func (s *OrderService) SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	orders, err := s.index.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.EventOrderSearch, map[string]any{
		"search":    filter.Search,
		"status":    filter.Status,
		"startDate": filter.StartDate,
		"endDate":   filter.EndDate,
	})
	return orders, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	order, err := s.repo.Patch(id, patch)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	// The index write runs against the merged-but-unsaved order; both writes
	// carry the same field values.
	s.sideEffect("index", order.ID, func() error {
		return s.index.Upsert(ctx, order)
	})
	if err := s.repo.Save(order); err != nil {
		return nil, err
	}

	s.sideEffect("publish", order.ID, func() error {
		return s.publisher.Publish(ctx, domain.TopicOrderStatusUpdated, domain.NewOrderStatusUpdatedEvent(order))
	})
	s.audit.Record(domain.EventOrderUpdated, map[string]any{
		"orderId": order.ID,
		"status":  order.Status,
	})

	return order, nil
}

// CancelOrder is the only guarded transition: a delivered or already cancelled
// order cannot be cancelled. Every other status may.
func (s *OrderService) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case domain.StatusDelivered:
		return nil, ErrOrderDelivered
	case domain.StatusCancelled:
		return nil, ErrOrderCancelled
	}

	order.Status = domain.StatusCancelled

	s.sideEffect("index", order.ID, func() error {
		return s.index.Upsert(ctx, order)
	})
	if err := s.repo.Save(order); err != nil {
		return nil, err
	}

	s.sideEffect("publish", order.ID, func() error {
		return s.publisher.Publish(ctx, domain.TopicOrderStatusUpdated, domain.NewOrderStatusUpdatedEvent(order))
	})
	s.audit.Record(domain.EventOrderCancelled, map[string]any{"orderId": order.ID})

	return order, nil
}

// RemoveOrder deletes the order from the primary store and drops its index
// document. The pre-deletion snapshot is returned to the caller.
func (s *OrderService) RemoveOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(order); err != nil {
		return nil, err
	}

	s.sideEffect("deindex", order.ID, func() error {
		return s.index.Remove(ctx, order.ID)
	})
	s.audit.Record(domain.EventOrderRemoved, map[string]any{"orderId": order.ID})

	return order, nil
}

// sideEffect runs one downstream step and converts its failure into a
// diagnostic. The index and event stream are allowed to lag or miss a write;
// the authoritative result already returned by the primary store stands.
func (s *OrderService) sideEffect(step, orderID string, fn func() error) {
	if err := fn(); err != nil {
		s.log.Warn().
			Err(err).
			Str("step", step).
			Str("orderId", orderID).
			Msg("side effect failed")
	}
}
