package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rl1809/storefront/internal/port"
)

// RestoreStock applies the last persisted stock snapshot of each product in
// the store and returns how many products had one. Products without a
// snapshot keep their catalog quantity.
func RestoreStock(ctx context.Context, store *Store, repo port.OrderRepository) (int, error) {
	restored := 0
	for _, p := range store.Products() {
		inv, err := repo.GetInventory(ctx, p.Name())
		if err != nil {
			return restored, fmt.Errorf("load inventory of %s: %w", p.Name(), err)
		}
		if inv == nil {
			continue
		}

		if err := p.SetQuantity(inv.Quantity); err != nil {
			return restored, fmt.Errorf("restore %s: %w", p.Name(), err)
		}
		if inv.Active {
			p.Activate()
		} else {
			p.Deactivate()
		}
		restored++
	}
	return restored, nil
}

// MirrorStock copies the current quantity of every product into the cache.
func MirrorStock(ctx context.Context, store *Store, cache port.CacheRepository) error {
	now := time.Now()
	for _, p := range store.Products() {
		if err := cache.SetStock(ctx, p.Name(), p.Quantity(), now); err != nil {
			return fmt.Errorf("mirror stock of %s: %w", p.Name(), err)
		}
	}
	return nil
}
