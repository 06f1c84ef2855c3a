package port

import (
	"context"
	"time"
)

type CacheRepository interface {
	// SetIdempotency sets a key for idempotency check, returns false if already exists
	SetIdempotency(ctx context.Context, key string) (bool, error)

	// SetStock mirrors the stock of a product as of at, ignoring values older than the mirrored one
	SetStock(ctx context.Context, productName string, quantity int, at time.Time) error
}
