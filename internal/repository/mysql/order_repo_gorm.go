package mysql

import (
	"errors"

	"order-service/internal/domain"
	"order-service/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(order *domain.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepo) FindByID(id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.Preload("Items").First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// Patch loads the record and merges only the provided fields onto it. The
// merged order is returned unsaved; a missing id never creates a record.
func (r *orderRepo) Patch(id string, patch domain.OrderPatch) (*domain.Order, error) {
	o, err := r.FindByID(id)
	if err != nil || o == nil {
		return nil, err
	}
	patch.Apply(o)
	return o, nil
}

// Save commits the full in-memory state of the order. Items have no lifecycle
// of their own, so the stored item set is replaced wholesale in the same
// transaction when it no longer matches.
func (r *orderRepo) Save(order *domain.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderID = order.ID
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
	})
}

func (r *orderRepo) Delete(order *domain.Order) error {
	return r.db.Select("Items").Delete(order).Error
}
