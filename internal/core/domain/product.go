package domain

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/shopspring/decimal"
)

// ProductKind identifies a Purchasable variant.
type ProductKind string

const (
	KindStandard   ProductKind = "standard"
	KindNonStocked ProductKind = "non_stocked"
	KindLimited    ProductKind = "limited"
)

// Purchasable is the capability shared by every product variant.
type Purchasable interface {
	Name() string
	Kind() ProductKind
	Price() decimal.Decimal
	Quantity() int
	SetQuantity(quantity int) error
	IsActive() bool
	Activate()
	Deactivate()
	Promotion() Promotion
	SetPromotion(promotion Promotion)
	// Buy removes quantity units from stock and returns what they cost.
	Buy(quantity int) (decimal.Decimal, error)
	Show() string
}

// base holds the attributes every variant shares. mu guards all mutable
// fields, including the stock of the variants that embed it.
type base struct {
	mu        sync.Mutex
	name      string
	price     decimal.Decimal
	active    bool
	promotion Promotion
}

func (b *base) init(name string, price decimal.Decimal) error {
	if name == "" {
		return validationErrorf("product name cannot be empty")
	}
	if price.IsNegative() {
		return validationErrorf("price cannot be negative")
	}
	b.name = name
	b.price = price
	b.active = true
	return nil
}

func (b *base) Name() string           { return b.name }
func (b *base) Price() decimal.Decimal { return b.price }

func (b *base) IsActive() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

func (b *base) Activate() {
	b.mu.Lock()
	b.active = true
	b.mu.Unlock()
}

func (b *base) Deactivate() {
	b.mu.Lock()
	b.active = false
	b.mu.Unlock()
}

func (b *base) Promotion() Promotion {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.promotion
}

// SetPromotion attaches a promotion; nil, including a typed nil, removes it.
func (b *base) SetPromotion(promotion Promotion) {
	if IsNil(promotion) {
		promotion = nil
	}
	b.mu.Lock()
	b.promotion = promotion
	b.mu.Unlock()
}

// IsNil reports whether v is nil or an interface holding a nil pointer.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (b *base) promotionSuffix() string {
	if b.promotion == nil {
		return ""
	}
	return ", Promotion: " + b.promotion.Name()
}

func checkBuyQuantity(quantity int) error {
	if quantity <= 0 {
		return validationErrorf("quantity must be greater than zero, got %d", quantity)
	}
	return nil
}

func total(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// Product is the standard variant: finite stock that runs out.
type Product struct {
	base
	quantity int
}

func NewProduct(name string, price decimal.Decimal, quantity int) (*Product, error) {
	p := &Product{}
	if err := p.init(name, price); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, validationErrorf("quantity cannot be negative")
	}
	p.quantity = quantity
	return p, nil
}

func (p *Product) Kind() ProductKind { return KindStandard }

func (p *Product) Quantity() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quantity
}

// SetQuantity replaces the stock. Zero deactivates the product; a positive
// value leaves the active flag untouched.
func (p *Product) SetQuantity(quantity int) error {
	if quantity < 0 {
		return validationErrorf("quantity cannot be negative")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quantity = quantity
	if p.quantity == 0 {
		p.active = false
	}
	return nil
}

func (p *Product) Buy(quantity int) (decimal.Decimal, error) {
	if err := checkBuyQuantity(quantity); err != nil {
		return decimal.Zero, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.take(quantity); err != nil {
		return decimal.Zero, err
	}
	if p.promotion != nil {
		return p.promotion.Apply(p.price, quantity), nil
	}
	return total(p.price, quantity), nil
}

// take checks availability and decrements stock. Callers hold p.mu.
func (p *Product) take(quantity int) error {
	if !p.active {
		return inventoryErrorf("the product %s is not available for purchase", p.name)
	}
	if quantity > p.quantity {
		return &StockError{Product: p.name, Requested: quantity, Available: p.quantity}
	}
	p.quantity -= quantity
	if p.quantity == 0 {
		p.active = false
	}
	return nil
}

func (p *Product) Show() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fmt.Sprintf("%s, Price: $%s, Quantity: %d%s",
		p.name, p.price.StringFixed(2), p.quantity, p.promotionSuffix())
}
