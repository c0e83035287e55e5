package models

import "github.com/shopspring/decimal"

// Product is the catalog view of an airship, owned by the product service.
// The gateway never persists products; it passes them through or embeds
// them into composed order responses.
type Product struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	PassengerCapacity int    `json:"passenger_capacity"`
	MaximumSpeed      int    `json:"maximum_speed"`
	InStock           int    `json:"in_stock"`
}

// Order is owned by the order service.
type Order struct {
	ID           int           `json:"id"`
	OrderDetails []OrderDetail `json:"order_details"`
}

// OrderDetail is a single line item. Product is filled in by the gateway
// at read time only; the order service never stores it.
type OrderDetail struct {
	ID        int             `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Product   *Product        `json:"product,omitempty"`
}

// NewOrderDetail is the normalized write model submitted to the order
// service when creating an order.
type NewOrderDetail struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
