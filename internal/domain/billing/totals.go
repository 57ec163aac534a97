// Package billing owns invoices, payments, and the totals engine.
package billing

import "math"

// Monetary amounts are whole currency units; sub-unit currency is not used.
// round rounds half away from zero so totals never drift below what was
// charged on paper receipts.
func round(x float64) int {
	if x < 0 {
		return -int(math.Floor(-x + 0.5))
	}
	return int(math.Floor(x + 0.5))
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Totals is the full breakdown computed from an invoice's line items.
type Totals struct {
	Subtotal       int `json:"subtotal"`
	DiscountAmount int `json:"discount_amount"`
	TaxAmount      int `json:"tax_amount"`
	Total          int `json:"total"`
}

// ItemTotal computes one line's charge after its per-line discount.
func ItemTotal(unitPrice, quantity int, discountPercent float64) int {
	return round(float64(unitPrice) * float64(quantity) * (1 - discountPercent/100))
}

// ComputeTotals derives the invoice totals from its items and the
// invoice-level discount and tax settings. The discount amount is clamped to
// [0, subtotal] so a generous fixed discount can never make the total
// negative.
func ComputeTotals(items []InvoiceItem, discount float64, discountType DiscountType, taxRatePercent float64, taxEnabled bool) Totals {
	subtotal := 0
	for _, item := range items {
		subtotal += ItemTotal(item.UnitPrice, item.Quantity, item.DiscountPercent)
	}

	var discountAmount int
	if discountType == DiscountPercentage {
		discountAmount = round(float64(subtotal) * discount / 100)
	} else {
		discountAmount = round(discount)
	}
	if discountAmount < 0 {
		discountAmount = 0
	}
	if discountAmount > subtotal {
		discountAmount = subtotal
	}

	taxable := subtotal - discountAmount
	taxAmount := 0
	if taxEnabled {
		taxAmount = round(float64(taxable) * taxRatePercent / 100)
	}

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		Total:          taxable + taxAmount,
	}
}
