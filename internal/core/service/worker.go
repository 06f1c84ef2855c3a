package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

const persistTimeout = 5 * time.Second

// RunWorker persists queued orders until the queue is closed. Stock already
// sold is not restored when persisting fails.
func RunWorker(id int, queue <-chan domain.Order, db port.OrderRepository, cache port.CacheRepository, logger *zap.Logger) {
	log := logger.With(zap.Int("worker", id))

	for order := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)

		order.Status = domain.OrderStatusConfirmed
		order.UpdatedAt = time.Now()

		if err := db.CreateOrder(ctx, order); err != nil {
			log.Error("failed to save order", zap.String("order_id", order.ID), zap.Error(err))
		} else {
			log.Info("saved order",
				zap.String("order_id", order.ID),
				zap.Int("lines", len(order.Lines)),
				zap.String("total", order.Total.StringFixed(2)))
		}

		for _, inv := range order.Stock {
			if err := cache.SetStock(ctx, inv.ProductName, inv.Quantity, inv.UpdatedAt); err != nil {
				log.Warn("failed to mirror stock",
					zap.String("product", inv.ProductName), zap.Error(err))
			}
		}

		cancel()
	}
}
