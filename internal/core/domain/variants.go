package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NonStockedProduct never runs out, e.g. a software licence. Its quantity is
// always reported as zero and an attached promotion is not applied on Buy.
type NonStockedProduct struct {
	base
}

func NewNonStockedProduct(name string, price decimal.Decimal) (*NonStockedProduct, error) {
	p := &NonStockedProduct{}
	if err := p.init(name, price); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *NonStockedProduct) Kind() ProductKind { return KindNonStocked }

func (p *NonStockedProduct) Quantity() int { return 0 }

// SetQuantity validates quantity and otherwise ignores it: the stock of a
// non-stocked product is fixed.
func (p *NonStockedProduct) SetQuantity(quantity int) error {
	if quantity < 0 {
		return validationErrorf("quantity cannot be negative")
	}
	return nil
}

func (p *NonStockedProduct) Buy(quantity int) (decimal.Decimal, error) {
	if err := checkBuyQuantity(quantity); err != nil {
		return decimal.Zero, err
	}
	return total(p.price, quantity), nil
}

func (p *NonStockedProduct) Show() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fmt.Sprintf("%s, Price: $%s, Quantity: Unlimited%s",
		p.name, p.price.StringFixed(2), p.promotionSuffix())
}

// LimitedProduct has finite stock and caps how many units a single purchase
// may take, e.g. shipping. An attached promotion is not applied on Buy.
type LimitedProduct struct {
	Product
	maximum int
}

func NewLimitedProduct(name string, price decimal.Decimal, quantity, maximum int) (*LimitedProduct, error) {
	p := &LimitedProduct{maximum: maximum}
	if err := p.init(name, price); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, validationErrorf("quantity cannot be negative")
	}
	if maximum < 1 {
		return nil, validationErrorf("maximum per order must be at least 1, got %d", maximum)
	}
	p.quantity = quantity
	return p, nil
}

func (p *LimitedProduct) Kind() ProductKind { return KindLimited }

func (p *LimitedProduct) Maximum() int { return p.maximum }

func (p *LimitedProduct) Buy(quantity int) (decimal.Decimal, error) {
	if err := checkBuyQuantity(quantity); err != nil {
		return decimal.Zero, err
	}
	if quantity > p.maximum {
		return decimal.Zero, validationErrorf("only %d units of %s are allowed per order, got %d",
			p.maximum, p.name, quantity)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.take(quantity); err != nil {
		return decimal.Zero, err
	}
	return total(p.price, quantity), nil
}

func (p *LimitedProduct) Show() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fmt.Sprintf("%s, Price: $%s, Quantity: %d, Limited to %d per order!%s",
		p.name, p.price.StringFixed(2), p.quantity, p.maximum, p.promotionSuffix())
}
