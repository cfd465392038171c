package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

func TestComputeTotalsNoDiscounts(t *testing.T) {
	// 2 x 10.00 at 20% tax.
	totals, err := ComputeTotals([]LineInput{
		{Quantity: 2, UnitPrice: 10.00, TaxRate: 20},
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, 20.00, totals.Subtotal)
	assert.Equal(t, 0.00, totals.ItemDiscount)
	assert.Equal(t, 20.00, totals.AfterItemDiscount)
	assert.Equal(t, 4.00, totals.Tax)
	assert.Equal(t, 24.00, totals.Total)
}

func TestComputeTotalsSessionDiscountScalesTax(t *testing.T) {
	// Same line with a 10% session discount: tax scales by 18/20.
	totals, err := ComputeTotals([]LineInput{
		{Quantity: 2, UnitPrice: 10.00, TaxRate: 20},
	}, &Discount{Kind: KindPercent, Value: 10})

	assert.NoError(t, err)
	assert.Equal(t, 20.00, totals.AfterItemDiscount)
	assert.Equal(t, 2.00, totals.SessionDiscount)
	assert.Equal(t, 18.00, totals.AfterAllDiscounts)
	assert.Equal(t, 3.60, totals.Tax)
	assert.Equal(t, 21.60, totals.Total)
}

func TestComputeTotalsItemDiscount(t *testing.T) {
	// One line half off (tax free), one taxed line untouched.
	totals, err := ComputeTotals([]LineInput{
		{Quantity: 1, UnitPrice: 10.00, TaxRate: 0, Discount: &Discount{Kind: KindPercent, Value: 50}},
		{Quantity: 2, UnitPrice: 5.00, TaxRate: 10},
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, 20.00, totals.Subtotal)
	assert.Equal(t, 5.00, totals.ItemDiscount)
	assert.Equal(t, 15.00, totals.AfterItemDiscount)
	assert.Equal(t, 1.00, totals.Tax)
	assert.Equal(t, 16.00, totals.Total)

	assert.Len(t, totals.Lines, 2)
	assert.Equal(t, 5.00, totals.Lines[0].Discount)
	assert.Equal(t, 0.00, totals.Lines[0].Tax)
	assert.Equal(t, 1.00, totals.Lines[1].Tax)
}

func TestComputeTotalsZeroItems(t *testing.T) {
	totals, err := ComputeTotals(nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, 0.00, totals.Subtotal)
	assert.Equal(t, 0.00, totals.Tax)
	assert.Equal(t, 0.00, totals.Total)
}

func TestComputeTotalsZeroItemsWithSessionDiscount(t *testing.T) {
	// Nothing to discount: the absolute amount caps at zero and the
	// tax ratio denominator of zero does not blow up.
	totals, err := ComputeTotals(nil, &Discount{Kind: KindAbsolute, Value: 5})

	assert.NoError(t, err)
	assert.Equal(t, 0.00, totals.SessionDiscount)
	assert.Equal(t, 0.00, totals.Total)
}

func TestComputeTotalsAbsoluteDiscountCapped(t *testing.T) {
	totals, err := ComputeTotals([]LineInput{
		{Quantity: 1, UnitPrice: 4.00, TaxRate: 0, Discount: &Discount{Kind: KindAbsolute, Value: 10}},
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, 4.00, totals.ItemDiscount)
	assert.Equal(t, 0.00, totals.Total)
}

func TestComputeTotalsSessionAbsoluteCapped(t *testing.T) {
	totals, err := ComputeTotals([]LineInput{
		{Quantity: 1, UnitPrice: 4.00, TaxRate: 0},
	}, &Discount{Kind: KindAbsolute, Value: 100})

	assert.NoError(t, err)
	assert.Equal(t, 4.00, totals.SessionDiscount)
	assert.Equal(t, 0.00, totals.AfterAllDiscounts)
	assert.Equal(t, 0.00, totals.Total)
}

func TestComputeTotalsRejectsNegativeDiscount(t *testing.T) {
	_, err := ComputeTotals([]LineInput{
		{Quantity: 1, UnitPrice: 10.00, Discount: &Discount{Kind: KindPercent, Value: -5}},
	}, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = ComputeTotals([]LineInput{
		{Quantity: 1, UnitPrice: 10.00},
	}, &Discount{Kind: KindAbsolute, Value: -1})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestComputeTotalsRejectsBadInputs(t *testing.T) {
	_, err := ComputeTotals([]LineInput{{Quantity: -1, UnitPrice: 1}}, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = ComputeTotals([]LineInput{{Quantity: 1, UnitPrice: -1}}, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = ComputeTotals([]LineInput{{Quantity: 1, UnitPrice: 1, TaxRate: 120}}, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = ComputeTotals([]LineInput{
		{Quantity: 1, UnitPrice: 1, Discount: &Discount{Kind: "bogus", Value: 1}},
	}, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestComputeTotalsNonNegativeOutputs(t *testing.T) {
	cases := []struct {
		items    []LineInput
		discount *Discount
	}{
		{[]LineInput{{Quantity: 3, UnitPrice: 2.35, TaxRate: 7.5}}, nil},
		{[]LineInput{
			{Quantity: 1, UnitPrice: 0, TaxRate: 0},
			{Quantity: 10, UnitPrice: 0.01, TaxRate: 100},
		}, &Discount{Kind: KindPercent, Value: 100}},
		{[]LineInput{
			{Quantity: 2, UnitPrice: 9.99, TaxRate: 11, Discount: &Discount{Kind: KindAbsolute, Value: 50}},
		}, &Discount{Kind: KindAbsolute, Value: 50}},
	}

	for _, tc := range cases {
		totals, err := ComputeTotals(tc.items, tc.discount)
		assert.NoError(t, err)

		assert.GreaterOrEqual(t, totals.Subtotal, 0.00)
		assert.GreaterOrEqual(t, totals.ItemDiscount, 0.00)
		assert.GreaterOrEqual(t, totals.AfterItemDiscount, 0.00)
		assert.GreaterOrEqual(t, totals.SessionDiscount, 0.00)
		assert.GreaterOrEqual(t, totals.AfterAllDiscounts, 0.00)
		assert.GreaterOrEqual(t, totals.Tax, 0.00)
		assert.GreaterOrEqual(t, totals.Total, 0.00)

		// total = afterAllDiscounts + tax, up to output rounding.
		assert.InDelta(t, totals.AfterAllDiscounts+totals.Tax, totals.Total, 0.011)
	}
}

func TestComputeTotalsRoundsHalfUp(t *testing.T) {
	// 3.375 sits exactly on the half cent and must round up to 3.38.
	totals, err := ComputeTotals([]LineInput{
		{Quantity: 1, UnitPrice: 3.375, TaxRate: 0},
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, 3.38, totals.Subtotal)
	assert.Equal(t, 3.38, totals.Total)
}

func TestComputeTotalsDeterministic(t *testing.T) {
	items := []LineInput{
		{Quantity: 2, UnitPrice: 7.25, TaxRate: 8.25, Discount: &Discount{Kind: KindPercent, Value: 15}},
		{Quantity: 1, UnitPrice: 12.40, TaxRate: 8.25},
	}
	discount := &Discount{Kind: KindAbsolute, Value: 3}

	first, err := ComputeTotals(items, discount)
	assert.NoError(t, err)
	second, err := ComputeTotals(items, discount)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
