package domain

import (
	"github.com/shopspring/decimal"
)

// PromotionKind names a promotion strategy in catalogs and API payloads.
type PromotionKind string

const (
	PromotionSecondHalfPrice PromotionKind = "second_half_price"
	PromotionThirdOneFree    PromotionKind = "third_one_free"
	PromotionPercentDiscount PromotionKind = "percent_discount"
)

var (
	oneAndHalf = decimal.RequireFromString("1.5")
	hundred    = decimal.NewFromInt(100)
)

// Promotion prices a purchase of quantity units at the given unit price.
// Implementations hold no mutable state and may be shared between products.
type Promotion interface {
	Name() string
	Kind() PromotionKind
	Apply(price decimal.Decimal, quantity int) decimal.Decimal
}

// SecondHalfPrice charges half price for every second unit.
type SecondHalfPrice struct {
	name string
}

func NewSecondHalfPrice(name string) *SecondHalfPrice {
	return &SecondHalfPrice{name: name}
}

func (p *SecondHalfPrice) Name() string        { return p.name }
func (p *SecondHalfPrice) Kind() PromotionKind { return PromotionSecondHalfPrice }

func (p *SecondHalfPrice) Apply(price decimal.Decimal, quantity int) decimal.Decimal {
	if quantity < 2 {
		return price.Mul(decimal.NewFromInt(int64(quantity)))
	}
	pairs := decimal.NewFromInt(int64(quantity / 2))
	rest := decimal.NewFromInt(int64(quantity % 2))
	return pairs.Mul(price).Mul(oneAndHalf).Add(rest.Mul(price))
}

// ThirdOneFree gives away one unit for every three bought.
type ThirdOneFree struct {
	name string
}

func NewThirdOneFree(name string) *ThirdOneFree {
	return &ThirdOneFree{name: name}
}

func (p *ThirdOneFree) Name() string        { return p.name }
func (p *ThirdOneFree) Kind() PromotionKind { return PromotionThirdOneFree }

func (p *ThirdOneFree) Apply(price decimal.Decimal, quantity int) decimal.Decimal {
	if quantity < 3 {
		return price.Mul(decimal.NewFromInt(int64(quantity)))
	}
	paid := quantity - quantity/3
	return price.Mul(decimal.NewFromInt(int64(paid)))
}

// PercentDiscount takes a fixed percentage off every unit.
type PercentDiscount struct {
	name    string
	percent decimal.Decimal
}

// NewPercentDiscount fails with ErrPromotion unless percent is within [0, 100].
func NewPercentDiscount(name string, percent decimal.Decimal) (*PercentDiscount, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return nil, promotionErrorf("percent must be between 0 and 100, got %s", percent)
	}
	return &PercentDiscount{name: name, percent: percent}, nil
}

func (p *PercentDiscount) Name() string             { return p.name }
func (p *PercentDiscount) Kind() PromotionKind      { return PromotionPercentDiscount }
func (p *PercentDiscount) Percent() decimal.Decimal { return p.percent }

func (p *PercentDiscount) Apply(price decimal.Decimal, quantity int) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(p.percent.Div(hundred))
	return price.Mul(factor).Mul(decimal.NewFromInt(int64(quantity)))
}

// NewPromotion builds a promotion by kind. The percent argument is only read
// for PromotionPercentDiscount.
func NewPromotion(kind PromotionKind, name string, percent decimal.Decimal) (Promotion, error) {
	switch kind {
	case PromotionSecondHalfPrice:
		return NewSecondHalfPrice(name), nil
	case PromotionThirdOneFree:
		return NewThirdOneFree(name), nil
	case PromotionPercentDiscount:
		p, err := NewPercentDiscount(name, percent)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, promotionErrorf("unknown promotion kind %q", kind)
	}
}
