package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestSecondHalfPrice_Apply(t *testing.T) {
	promo := NewSecondHalfPrice("Second Half price!")

	testCases := []struct {
		quantity int
		expected decimal.Decimal
	}{
		{quantity: 1, expected: d(10)},
		{quantity: 2, expected: d(15)},
		{quantity: 3, expected: d(25)},
		{quantity: 4, expected: d(30)},
		{quantity: 0, expected: d(0)},
	}

	for _, tc := range testCases {
		got := promo.Apply(d(10), tc.quantity)
		assert.True(t, tc.expected.Equal(got), "quantity %d: expected %s, got %s", tc.quantity, tc.expected, got)
	}
	assert.Equal(t, "Second Half price!", promo.Name())
	assert.Equal(t, PromotionSecondHalfPrice, promo.Kind())
}

func TestThirdOneFree_Apply(t *testing.T) {
	promo := NewThirdOneFree("Third One Free!")

	testCases := []struct {
		quantity int
		expected decimal.Decimal
	}{
		{quantity: 1, expected: d(30)},
		{quantity: 2, expected: d(60)},
		{quantity: 3, expected: d(60)},
		{quantity: 4, expected: d(90)},
		{quantity: 6, expected: d(120)},
	}

	for _, tc := range testCases {
		got := promo.Apply(d(30), tc.quantity)
		assert.True(t, tc.expected.Equal(got), "quantity %d: expected %s, got %s", tc.quantity, tc.expected, got)
	}
}

func TestPercentDiscount_Apply(t *testing.T) {
	promo, err := NewPercentDiscount("20% off", d(20))
	require.NoError(t, err)

	assert.True(t, d(80).Equal(promo.Apply(d(100), 1)))
	assert.True(t, d(240).Equal(promo.Apply(d(100), 3)))
	assert.True(t, d(20).Equal(promo.Percent()))
}

func TestPercentDiscount_Bounds(t *testing.T) {
	free, err := NewPercentDiscount("free", d(100))
	require.NoError(t, err)
	assert.True(t, free.Apply(d(50), 2).IsZero())

	none, err := NewPercentDiscount("none", d(0))
	require.NoError(t, err)
	assert.True(t, d(100).Equal(none.Apply(d(50), 2)))

	_, err = NewPercentDiscount("too much", d(101))
	assert.ErrorIs(t, err, ErrPromotion)

	_, err = NewPercentDiscount("negative", d(-5))
	assert.ErrorIs(t, err, ErrPromotion)
}

func TestNewPromotion(t *testing.T) {
	promo, err := NewPromotion(PromotionThirdOneFree, "3 for 2", decimal.Zero)
	require.NoError(t, err)
	assert.IsType(t, &ThirdOneFree{}, promo)

	promo, err = NewPromotion(PromotionPercentDiscount, "30% off", d(30))
	require.NoError(t, err)
	assert.True(t, d(70).Equal(promo.Apply(d(100), 1)))

	promo, err = NewPromotion(PromotionPercentDiscount, "broken", d(300))
	assert.ErrorIs(t, err, ErrPromotion)
	assert.Nil(t, promo)

	_, err = NewPromotion("buy_one_get_ten", "nope", decimal.Zero)
	assert.ErrorIs(t, err, ErrPromotion)
}
