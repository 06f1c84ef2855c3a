package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rl1809/storefront/internal/core/domain"
)

// ErrProductNotFound is returned by FindProduct. It is also an inventory error.
var ErrProductNotFound = errors.New("product not found")

// Store holds an ordered list of products. The products are shared with the
// caller, not owned by the store.
type Store struct {
	mu       sync.RWMutex
	products []domain.Purchasable
}

// NewStore holds the given products in order. Nil products are skipped.
func NewStore(products ...domain.Purchasable) *Store {
	s := &Store{products: make([]domain.Purchasable, 0, len(products))}
	for _, p := range products {
		if !domain.IsNil(p) {
			s.products = append(s.products, p)
		}
	}
	return s
}

func (s *Store) AddProduct(p domain.Purchasable) error {
	if domain.IsNil(p) {
		return domain.ValidationErrorf("product cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return nil
}

// RemoveProduct removes the first reference to p.
func (s *Store) RemoveProduct(p domain.Purchasable) error {
	if domain.IsNil(p) {
		return domain.ValidationErrorf("product cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, held := range s.products {
		if held == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return domain.InventoryErrorf("the store does not hold %s", p.Name())
}

// Products returns every held product, active or not.
func (s *Store) Products() []domain.Purchasable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Purchasable(nil), s.products...)
}

func (s *Store) TotalQuantity() (int, error) {
	products := s.Products()
	if len(products) == 0 {
		return 0, domain.InventoryErrorf("no products available in the store")
	}

	total := 0
	for _, p := range products {
		total += p.Quantity()
	}
	return total, nil
}

func (s *Store) AllActiveProducts() ([]domain.Purchasable, error) {
	var active []domain.Purchasable
	for _, p := range s.Products() {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return nil, domain.InventoryErrorf("no active products available in the store")
	}
	return active, nil
}

// FindProduct returns the first held product with the given name.
func (s *Store) FindProduct(name string) (domain.Purchasable, error) {
	for _, p := range s.Products() {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %w: %q", domain.ErrInventory, ErrProductNotFound, name)
}

// Order buys every item in sequence and returns the summed price. It does not
// check that the products belong to s.
func (s *Store) Order(items []domain.OrderItem) (decimal.Decimal, error) {
	return Order(items)
}

// Checkout is Order with the priced lines kept.
func (s *Store) Checkout(items []domain.OrderItem) ([]domain.OrderLine, decimal.Decimal, error) {
	return Checkout(items)
}

// Order buys every item in sequence and returns the summed price. The first
// failing item aborts the order; units bought by earlier items stay sold.
func Order(items []domain.OrderItem) (decimal.Decimal, error) {
	_, total, err := Checkout(items)
	return total, err
}

func Checkout(items []domain.OrderItem) ([]domain.OrderLine, decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, decimal.Zero, domain.ValidationErrorf("shopping list cannot be empty")
	}
	for i, item := range items {
		if domain.IsNil(item.Product) {
			return nil, decimal.Zero, domain.ValidationErrorf("shopping list item %d has no product", i)
		}
	}

	lines := make([]domain.OrderLine, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		price, err := item.Product.Buy(item.Quantity)
		if err != nil {
			return nil, decimal.Zero, err
		}
		lines = append(lines, domain.OrderLine{
			Product:  item.Product.Name(),
			Quantity: item.Quantity,
			Price:    price,
		})
		total = total.Add(price)
	}
	return lines, total, nil
}
