package domain

import "time"

// Inventory is a point-in-time stock level of one product.
type Inventory struct {
	ProductName string
	Quantity    int
	Active      bool
	Version     int // optimistic locking
	UpdatedAt   time.Time
}

// SnapshotOf captures the current stock of p.
func SnapshotOf(p Purchasable) Inventory {
	return Inventory{
		ProductName: p.Name(),
		Quantity:    p.Quantity(),
		Active:      p.IsActive(),
		UpdatedAt:   time.Now(),
	}
}
