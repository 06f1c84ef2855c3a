package domain

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLaptop(t *testing.T) *Product {
	t.Helper()
	p, err := NewProduct("Laptop", d(250), 100)
	require.NoError(t, err)
	return p
}

func TestNewProduct_Success(t *testing.T) {
	p := newLaptop(t)

	assert.Equal(t, "Laptop", p.Name())
	assert.True(t, d(250).Equal(p.Price()))
	assert.Equal(t, 100, p.Quantity())
	assert.True(t, p.IsActive())
	assert.Equal(t, KindStandard, p.Kind())
	assert.Nil(t, p.Promotion())
}

func TestNewProduct_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		product  string
		price    decimal.Decimal
		quantity int
		message  string
	}{
		{name: "empty name", product: "", price: d(250), quantity: 100, message: "product name cannot be empty"},
		{name: "negative price", product: "Laptop", price: d(-250), quantity: 100, message: "price cannot be negative"},
		{name: "negative quantity", product: "Laptop", price: d(250), quantity: -100, message: "quantity cannot be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProduct(tc.product, tc.price, tc.quantity)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestNewProduct_ZeroValuesAreActive(t *testing.T) {
	p, err := NewProduct("Sticker", decimal.Zero, 0)
	require.NoError(t, err)
	assert.True(t, p.IsActive())
}

func TestSetQuantity_ZeroDeactivates(t *testing.T) {
	p := newLaptop(t)
	require.NoError(t, p.SetQuantity(0))
	assert.False(t, p.IsActive())

	// A positive quantity does not reactivate on its own.
	require.NoError(t, p.SetQuantity(5))
	assert.False(t, p.IsActive())
	assert.Equal(t, 5, p.Quantity())

	p.Activate()
	assert.True(t, p.IsActive())
}

func TestSetQuantity_Negative(t *testing.T) {
	p := newLaptop(t)
	assert.ErrorIs(t, p.SetQuantity(-1), ErrValidation)
	assert.Equal(t, 100, p.Quantity())
}

func TestBuy_ReducesQuantity(t *testing.T) {
	p := newLaptop(t)

	price, err := p.Buy(4)
	require.NoError(t, err)
	assert.True(t, d(1000).Equal(price))
	assert.Equal(t, 96, p.Quantity())
}

func TestBuy_LastUnitsDeactivate(t *testing.T) {
	p, err := NewProduct("Mouse", d(20), 2)
	require.NoError(t, err)

	_, err = p.Buy(2)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity())
	assert.False(t, p.IsActive())

	_, err = p.Buy(1)
	assert.ErrorIs(t, err, ErrInventory)
}

func TestBuy_MoreThanQuantity(t *testing.T) {
	p := newLaptop(t)

	price, err := p.Buy(101)
	assert.ErrorIs(t, err, ErrInventory)
	assert.True(t, price.IsZero())
	assert.Equal(t, 100, p.Quantity())

	var stockErr *StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 101, stockErr.Requested)
	assert.Equal(t, 100, stockErr.Available)
	assert.Equal(t, "101 items requested, but 100 units of Laptop are available for purchase", err.Error())
}

func TestBuy_Inactive(t *testing.T) {
	p := newLaptop(t)
	p.Deactivate()

	_, err := p.Buy(1)
	assert.ErrorIs(t, err, ErrInventory)
	assert.Contains(t, err.Error(), "not available for purchase")
	assert.Equal(t, 100, p.Quantity())
}

func TestBuy_NonPositiveQuantity(t *testing.T) {
	standard := newLaptop(t)
	nonStocked, err := NewNonStockedProduct("Windows License", d(125))
	require.NoError(t, err)
	limited, err := NewLimitedProduct("Shipping", d(10), 250, 1)
	require.NoError(t, err)

	for _, p := range []Purchasable{standard, nonStocked, limited} {
		for _, q := range []int{0, -1, -50} {
			_, err := p.Buy(q)
			assert.ErrorIs(t, err, ErrValidation, "%s buy(%d)", p.Name(), q)
		}
	}
}

func TestBuy_WithPromotion(t *testing.T) {
	p, err := NewProduct("Bose QuietComfort Earbuds", d(250), 500)
	require.NoError(t, err)
	p.SetPromotion(NewSecondHalfPrice("Second Half price!"))

	price, err := p.Buy(2)
	require.NoError(t, err)
	assert.True(t, d(375).Equal(price))
	assert.Equal(t, 498, p.Quantity())

	p.SetPromotion(nil)
	price, err = p.Buy(2)
	require.NoError(t, err)
	assert.True(t, d(500).Equal(price))
}

func TestSetPromotion_TypedNilClears(t *testing.T) {
	p, err := NewProduct("Bose QuietComfort Earbuds", d(250), 10)
	require.NoError(t, err)
	p.SetPromotion(NewThirdOneFree("Third One Free!"))

	var missing *SecondHalfPrice
	p.SetPromotion(missing)
	assert.Nil(t, p.Promotion())

	price, err := p.Buy(3)
	require.NoError(t, err)
	assert.True(t, d(750).Equal(price))
	assert.Equal(t, "Bose QuietComfort Earbuds, Price: $250.00, Quantity: 7", p.Show())
}

func TestIsNil(t *testing.T) {
	var product *Product
	var promo Promotion
	var purchasable Purchasable = product

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(product))
	assert.True(t, IsNil(promo))
	assert.True(t, IsNil(purchasable))
	assert.False(t, IsNil(NewThirdOneFree("x")))
}

func TestNonStockedProduct(t *testing.T) {
	p, err := NewNonStockedProduct("Windows License", d(125))
	require.NoError(t, err)
	p.SetPromotion(NewSecondHalfPrice("ignored"))

	for i := 0; i < 5; i++ {
		price, err := p.Buy(1000)
		require.NoError(t, err)
		assert.True(t, d(125000).Equal(price))
		assert.Equal(t, 0, p.Quantity())
	}

	require.NoError(t, p.SetQuantity(42))
	assert.Equal(t, 0, p.Quantity())
	assert.ErrorIs(t, p.SetQuantity(-1), ErrValidation)

	// Deactivation does not stop purchases of a non-stocked product.
	p.Deactivate()
	_, err = p.Buy(1)
	assert.NoError(t, err)
	assert.Equal(t, KindNonStocked, p.Kind())
}

func TestLimitedProduct(t *testing.T) {
	p, err := NewLimitedProduct("Shipping", d(10), 250, 5)
	require.NoError(t, err)
	p.SetPromotion(NewThirdOneFree("ignored"))

	_, err = p.Buy(6)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 250, p.Quantity())

	price, err := p.Buy(5)
	require.NoError(t, err)
	assert.True(t, d(50).Equal(price))
	assert.Equal(t, 245, p.Quantity())
	assert.Equal(t, 5, p.Maximum())
	assert.Equal(t, KindLimited, p.Kind())
}

func TestLimitedProduct_MaximumCheckedFirst(t *testing.T) {
	p, err := NewLimitedProduct("Shipping", d(10), 2, 1)
	require.NoError(t, err)
	p.Deactivate()

	_, err = p.Buy(3)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrInventory)

	_, err = p.Buy(1)
	assert.ErrorIs(t, err, ErrInventory)
}

func TestLimitedProduct_Stock(t *testing.T) {
	p, err := NewLimitedProduct("Gift wrap", d(3), 1, 2)
	require.NoError(t, err)

	_, err = p.Buy(2)
	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, stockErr.Available)

	_, err = p.Buy(1)
	require.NoError(t, err)
	assert.False(t, p.IsActive())

	require.NoError(t, p.SetQuantity(0))
	assert.False(t, p.IsActive())
}

func TestNewLimitedProduct_Invalid(t *testing.T) {
	_, err := NewLimitedProduct("Shipping", d(10), 250, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewLimitedProduct("", d(10), 250, 1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewLimitedProduct("Shipping", d(10), -1, 1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestShow(t *testing.T) {
	p, err := NewProduct("MacBook Air M2", d(1450), 100)
	require.NoError(t, err)
	assert.Equal(t, "MacBook Air M2, Price: $1450.00, Quantity: 100", p.Show())

	p.SetPromotion(NewThirdOneFree("Third One Free!"))
	assert.Equal(t, "MacBook Air M2, Price: $1450.00, Quantity: 100, Promotion: Third One Free!", p.Show())

	license, err := NewNonStockedProduct("Windows License", d(125))
	require.NoError(t, err)
	assert.Equal(t, "Windows License, Price: $125.00, Quantity: Unlimited", license.Show())

	shipping, err := NewLimitedProduct("Shipping", d(10), 250, 1)
	require.NoError(t, err)
	assert.Equal(t, "Shipping, Price: $10.00, Quantity: 250, Limited to 1 per order!", shipping.Show())
}

func TestBuy_ConcurrentNeverOversells(t *testing.T) {
	initialStock := 20
	totalRequests := 50

	p, err := NewProduct("iPhone 15", d(999), initialStock)
	require.NoError(t, err)

	var successCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.Buy(1); err == nil {
				successCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(initialStock), successCount.Load())
	assert.Equal(t, 0, p.Quantity())
	assert.False(t, p.IsActive())
}

func TestSnapshotOf(t *testing.T) {
	p := newLaptop(t)
	_, err := p.Buy(10)
	require.NoError(t, err)

	inv := SnapshotOf(p)
	assert.Equal(t, "Laptop", inv.ProductName)
	assert.Equal(t, 90, inv.Quantity)
	assert.True(t, inv.Active)
	assert.False(t, inv.UpdatedAt.IsZero())
}
