// Package pricing computes session totals from line items and
// discounts. It is pure: no storage, no HTTP, deterministic for a
// given input, so a recomputation can run inside any transaction and
// always lands on the same number.
package pricing

import (
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

// Discount kinds. Percent applies a 0-100 rate; absolute subtracts a
// flat amount, capped at whatever it applies to.
const (
	KindPercent  = "percent"
	KindAbsolute = "absolute"
)

// Discount is either a percentage or a flat amount, never both.
type Discount struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

// LineInput is one order line as the engine sees it: quantities and
// prices already captured, catalog not consulted.
type LineInput struct {
	Quantity  int
	UnitPrice float64
	TaxRate   float64 // percent, 0-100
	Discount  *Discount
}

// LineTotals is the per-line breakdown, rounded for output.
type LineTotals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"` // before session-discount scaling
}

// Totals is the full breakdown for a set of lines. Every field is
// rounded to 2dp half-up; intermediate arithmetic is not rounded.
type Totals struct {
	Subtotal          float64      `json:"subtotal"`
	ItemDiscount      float64      `json:"item_discount"`
	AfterItemDiscount float64      `json:"after_item_discount"`
	SessionDiscount   float64      `json:"session_discount"`
	AfterAllDiscounts float64      `json:"after_all_discounts"`
	Tax               float64      `json:"tax"`
	Total             float64      `json:"total"`
	Lines             []LineTotals `json:"lines"`
}

// ComputeTotals runs the whole pricing pipeline:
//
//	subtotal -> item discounts -> session discount -> per-line tax,
//	scaled so the session discount is prorated across lines.
//
// Zero lines yield all-zero totals. Negative quantities, prices or
// discount values are rejected, as are tax rates outside 0-100.
func ComputeTotals(items []LineInput, sessionDiscount *Discount) (Totals, error) {
	var totals Totals

	var subtotal, itemDiscountSum, taxSum float64
	lines := make([]LineTotals, 0, len(items))

	for i, item := range items {
		if item.Quantity < 0 {
			return totals, utils.InvalidInputf("line %d: negative quantity %d", i, item.Quantity)
		}
		if item.UnitPrice < 0 {
			return totals, utils.InvalidInputf("line %d: negative unit price %.2f", i, item.UnitPrice)
		}
		if item.TaxRate < 0 || item.TaxRate > 100 {
			return totals, utils.InvalidInputf("line %d: tax rate %.2f out of range", i, item.TaxRate)
		}

		lineSub := float64(item.Quantity) * item.UnitPrice

		lineDisc, err := discountAmount(item.Discount, lineSub)
		if err != nil {
			return totals, utils.InvalidInputf("line %d: %v", i, err)
		}

		lineTax := (lineSub - lineDisc) * item.TaxRate / 100

		subtotal += lineSub
		itemDiscountSum += lineDisc
		taxSum += lineTax

		lines = append(lines, LineTotals{
			Subtotal: utils.RoundCurrency(lineSub),
			Discount: utils.RoundCurrency(lineDisc),
			Tax:      utils.RoundCurrency(lineTax),
		})
	}

	afterItem := subtotal - itemDiscountSum

	sessionDisc, err := discountAmount(sessionDiscount, afterItem)
	if err != nil {
		return totals, utils.InvalidInputf("session discount: %v", err)
	}

	afterAll := afterItem - sessionDisc

	// The per-line tax was computed before the session discount; scale
	// the sum so the session discount is shared proportionally across
	// lines. Ratio is 1 when there is nothing to discount.
	ratio := 1.0
	if afterItem != 0 {
		ratio = afterAll / afterItem
	}
	scaledTax := taxSum * ratio

	totals = Totals{
		Subtotal:          utils.RoundCurrency(subtotal),
		ItemDiscount:      utils.RoundCurrency(itemDiscountSum),
		AfterItemDiscount: utils.RoundCurrency(afterItem),
		SessionDiscount:   utils.RoundCurrency(sessionDisc),
		AfterAllDiscounts: utils.RoundCurrency(afterAll),
		Tax:               utils.RoundCurrency(scaledTax),
		Total:             utils.RoundCurrency(afterAll + scaledTax),
		Lines:             lines,
	}
	return totals, nil
}

// discountAmount resolves a discount against the amount it applies to.
// Flat discounts are capped at that amount; negative values are an
// error, not a clamp.
func discountAmount(d *Discount, base float64) (float64, error) {
	if d == nil || d.Kind == "" {
		return 0, nil
	}
	if d.Value < 0 {
		return 0, utils.InvalidInputf("negative discount %.2f", d.Value)
	}
	switch d.Kind {
	case KindPercent:
		if d.Value > 100 {
			return 0, utils.InvalidInputf("discount percent %.2f out of range", d.Value)
		}
		return base * d.Value / 100, nil
	case KindAbsolute:
		if d.Value > base {
			return base, nil
		}
		return d.Value, nil
	default:
		return 0, utils.InvalidInputf("unknown discount kind %q", d.Kind)
	}
}
