package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// Selection records which items a customer picked inside one customization
// option of a product. It is stored verbatim on cart lines and order items.
type Selection struct {
	OptionID      uuid.UUID   `json:"optionId"`
	SelectedItems []uuid.UUID `json:"selectedItems"`
}

type Order struct {
	ID              uuid.UUID            `json:"id" gorm:"type:uuid;primaryKey"`
	RestaurantID    uuid.UUID            `json:"restaurant_id" gorm:"type:uuid;not null;index"`
	Restaurant      *Restaurant          `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	CustomerID      uuid.UUID            `json:"customer_id" gorm:"type:uuid;not null;index"`
	Customer        *User                `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Status          OrderStatus          `json:"status" gorm:"not null;default:'pending'"`
	TotalPrice      decimal.Decimal      `json:"total_price" gorm:"type:decimal(10,2);not null"`
	Notes           string               `json:"notes"`
	DeliveryAddress string               `json:"delivery_address"`
	ContactPhone    string               `json:"contact_phone" gorm:"not null"`
	Items           []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory   []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// CustomizationDetail is the human-readable snapshot of one selection: the
// option name and the names of the chosen items, resolved at submission time
// so later catalog deletions never blank out order history.
type CustomizationDetail struct {
	OptionName string   `json:"optionName"`
	ItemNames  []string `json:"itemNames"`
}

// OrderItem is an immutable snapshot of one cart line at submission time.
// Product name, unit price and customization names are copied so later
// catalog edits never change historical orders.
type OrderItem struct {
	ID                   uuid.UUID             `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID             `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID            uuid.UUID             `json:"product_id" gorm:"type:uuid;not null"`
	ProductName          string                `json:"product_name" gorm:"not null"`
	UnitPrice            decimal.Decimal       `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Quantity             int                   `json:"quantity" gorm:"not null"`
	Customizations       []Selection           `json:"customizations" gorm:"serializer:json"`
	CustomizationDetails []CustomizationDetail `json:"customization_details" gorm:"serializer:json"`
	TotalPrice           decimal.Decimal       `json:"total_price" gorm:"type:decimal(10,2);not null"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// OrderStatusHistory tracks every status change for auditing
type OrderStatusHistory struct {
	ID         uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID   `json:"order_id" gorm:"type:uuid;not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uuid.UUID   `json:"changed_by" gorm:"type:uuid"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (h *OrderStatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// CartSnapshot is the durable copy of one customer's cart, written after
// every mutation and read back when the session returns. The payload is an
// opaque JSON blob owned by the cart package.
type CartSnapshot struct {
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;primaryKey"`
	Payload    []byte    `json:"-" gorm:"not null"`
	UpdatedAt  time.Time `json:"updated_at"`
}
