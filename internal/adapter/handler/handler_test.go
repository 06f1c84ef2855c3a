package handler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
)

type mockCacheRepo struct {
	mu   sync.Mutex
	keys map[string]bool
	err  error
}

func (m *mockCacheRepo) SetIdempotency(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	if m.keys[key] {
		return false, nil
	}
	m.keys[key] = true
	return true, nil
}

func (m *mockCacheRepo) SetStock(ctx context.Context, productName string, quantity int, at time.Time) error {
	return m.err
}

// newTestService builds a small store and drains its order queue.
func newTestService(t *testing.T) (*service.OrderService, *mockCacheRepo) {
	t.Helper()

	keyboard, err := domain.NewProduct("Keyboard", decimal.NewFromInt(40), 3)
	require.NoError(t, err)
	keyboard.SetPromotion(domain.NewThirdOneFree("Third One Free!"))

	license, err := domain.NewNonStockedProduct("Windows License", decimal.NewFromInt(125))
	require.NoError(t, err)

	shipping, err := domain.NewLimitedProduct("Shipping", decimal.NewFromInt(10), 250, 1)
	require.NoError(t, err)

	cache := &mockCacheRepo{keys: make(map[string]bool)}
	svc := service.NewOrderService(service.NewStore(keyboard, license, shipping), cache, 100)
	go func() {
		for range svc.GetOrderQueue() {
		}
	}()
	t.Cleanup(svc.Close)
	return svc, cache
}
