package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the persisted aggregate. Detail ids are assigned by the
// database on create.
type Order struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_details"`
	CreatedAt    time.Time     `json:"-"`
	UpdatedAt    time.Time     `json:"-"`
}

// OrderDetail is one line item of an order. Price is kept as a decimal
// so the scale a client submits survives the round trip.
type OrderDetail struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"-"`
	ProductID string          `gorm:"not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(14,2)" json:"price"`
}

// CreateOrderRequest is the write payload accepted by POST /orders.
type CreateOrderRequest struct {
	OrderDetails []CreateOrderDetail `json:"order_details" binding:"required,min=1,dive"`
}

type CreateOrderDetail struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}
