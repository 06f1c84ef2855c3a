package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

var (
	ErrDuplicateRequest = errors.New("duplicate request")
	ErrServiceClosed    = errors.New("order service closed")
)

// OrderService places orders against a store for the network surfaces and
// hands placed orders to the persistence workers.
type OrderService struct {
	store      *Store
	cache      port.CacheRepository
	orderQueue chan domain.Order

	// snapshotMu orders stock snapshots so a later UpdatedAt never carries
	// an older quantity.
	snapshotMu sync.Mutex

	// closeMu is held for reading by every PlaceOrder in flight, so Close
	// waits for them before closing the queue.
	closeMu sync.RWMutex
	closed  bool
}

func NewOrderService(store *Store, cache port.CacheRepository, queueSize int) *OrderService {
	return &OrderService{
		store:      store,
		cache:      cache,
		orderQueue: make(chan domain.Order, queueSize),
	}
}

func (s *OrderService) Store() *Store {
	return s.store
}

// PlaceOrder checks out items and queues the resulting order. A non-empty
// requestID makes the call idempotent: a repeat returns ErrDuplicateRequest
// without buying anything.
func (s *OrderService) PlaceOrder(ctx context.Context, requestID string, items []domain.OrderItem) (domain.Order, error) {
	s.closeMu.RLock()
	defer s.closeMu.RUnlock()
	if s.closed {
		return domain.Order{}, ErrServiceClosed
	}

	if requestID != "" {
		ok, err := s.cache.SetIdempotency(ctx, "order:"+requestID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("idempotency check failed: %w", err)
		}
		if !ok {
			return domain.Order{}, ErrDuplicateRequest
		}
	}

	lines, total, err := s.store.Checkout(items)
	if err != nil {
		return domain.Order{}, err
	}

	stock := s.snapshot(items)

	now := time.Now()
	order := domain.Order{
		ID:        uuid.NewString(),
		RequestID: requestID,
		Lines:     lines,
		Total:     total,
		Status:    domain.OrderStatusPending,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.orderQueue <- order

	return order, nil
}

func (s *OrderService) snapshot(items []domain.OrderItem) []domain.Inventory {
	s.snapshotMu.Lock()
	defer s.snapshotMu.Unlock()

	stock := make([]domain.Inventory, 0, len(items))
	seen := make(map[domain.Purchasable]bool, len(items))
	for _, item := range items {
		if seen[item.Product] {
			continue
		}
		seen[item.Product] = true
		stock = append(stock, domain.SnapshotOf(item.Product))
	}
	return stock
}

func (s *OrderService) GetOrderQueue() <-chan domain.Order {
	return s.orderQueue
}

// Close waits for orders being placed, then closes the queue. Later calls to
// PlaceOrder return ErrServiceClosed.
func (s *OrderService) Close() {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.orderQueue)
}
