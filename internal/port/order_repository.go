package port

import (
	"context"

	"github.com/rl1809/storefront/internal/core/domain"
)

type OrderRepository interface {
	// CreateOrder persists an order, its lines and the stock snapshots it carries
	CreateOrder(ctx context.Context, order domain.Order) error

	// GetInventory retrieves the last persisted stock of a product, nil if none
	GetInventory(ctx context.Context, productName string) (*domain.Inventory, error)
}
