package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	stockKeyPrefix       = "stock:"
	stockAtKeyPrefix     = "stock_at:"
	idempotencyKeyPrefix = "idempotency:"
	idempotencyKeyTTL    = 24 * time.Hour
)

// setStockScript writes the stock only when its timestamp is not older than
// the one already stored.
var setStockScript = redis.NewScript(`
local stockKey = KEYS[1]
local atKey = KEYS[2]
local quantity = ARGV[1]
local at = tonumber(ARGV[2])

local current = redis.call('GET', atKey)
if current and tonumber(current) > at then
	return 0
end

redis.call('SET', stockKey, quantity)
redis.call('SET', atKey, at)
return 1
`)

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) SetIdempotency(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, idempotencyKeyPrefix+key, 1, idempotencyKeyTTL).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

func (r *RedisAdapter) SetStock(ctx context.Context, productName string, quantity int, at time.Time) error {
	keys := []string{stockKeyPrefix + productName, stockAtKeyPrefix + productName}
	return setStockScript.Run(ctx, r.client, keys, quantity, at.UnixNano()).Err()
}

// GetStock returns the mirrored stock of a product and false when none is set.
func (r *RedisAdapter) GetStock(ctx context.Context, productName string) (int, bool, error) {
	stock, err := r.client.Get(ctx, stockKeyPrefix+productName).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return stock, true, nil
}
