package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// OrderItem asks for quantity units of a product.
type OrderItem struct {
	Product  Purchasable
	Quantity int
}

// OrderLine is one priced item of a placed order.
type OrderLine struct {
	Product  string
	Quantity int
	Price    decimal.Decimal
}

type Order struct {
	ID        string
	RequestID string
	Lines     []OrderLine
	Total     decimal.Decimal
	Status    OrderStatus
	Stock     []Inventory // stock of the ordered products right after checkout
	CreatedAt time.Time
	UpdatedAt time.Time
}
