package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID        string      `json:"id" gorm:"type:char(36);primaryKey"`
	Status    OrderStatus `json:"status" gorm:"type:enum('pending','processing','shipped','delivered','cancelled');default:'pending'"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

type OrderItem struct {
	ID       uint64  `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID  string  `json:"-" gorm:"type:char(36);not null;index"`
	Name     string  `json:"name" gorm:"not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"type:decimal(10,2);not null"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderPatch carries a partial update. Nil fields leave the target order
// untouched; a non-nil Items pointer replaces the whole item set.
type OrderPatch struct {
	Status *OrderStatus `json:"status"`
	Items  *[]OrderItem `json:"items"`
}

func (p OrderPatch) Apply(o *Order) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Items != nil {
		items := make([]OrderItem, len(*p.Items))
		copy(items, *p.Items)
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = o.ID
		}
		o.Items = items
	}
}

// OrderFilter narrows an index search. Zero-valued fields are omitted from the
// query entirely; present fields are combined with AND.
type OrderFilter struct {
	Search    string
	Status    OrderStatus
	StartDate *time.Time
	EndDate   *time.Time
}
