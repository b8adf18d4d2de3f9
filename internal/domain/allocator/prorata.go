// Package allocator spreads a discounted order total across line items.
//
// The pro-rata allocator scales every unit price by the same factor so the
// discount is shared in proportion to each item's price:
//
//	factor = target_total / sum(unit_price * quantity)
//	discounted_price = round(unit_price * factor)
//
// Each item is rounded on its own. The allocated total can therefore drift
// from the target by a few units; the drift is reported, never corrected.
package allocator

import (
	"github.com/shopspring/decimal"
)

// FactorPrecision is the number of fractional digits kept for Result.Factor.
const FactorPrecision = 32

// Item is one priced line to allocate a discount to.
type Item struct {
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
}

// Allocation is the discounted price computed for a single item.
type Allocation struct {
	UnitPrice       decimal.Decimal
	Quantity        decimal.Decimal
	DiscountedPrice decimal.Decimal
}

// LineTotal returns the pre-discount total for the line.
func (a Allocation) LineTotal() decimal.Decimal {
	return a.UnitPrice.Mul(a.Quantity)
}

// DiscountedTotal returns the post-discount total for the line.
func (a Allocation) DiscountedTotal() decimal.Decimal {
	return a.DiscountedPrice.Mul(a.Quantity)
}

// Result contains the allocation results.
type Result struct {
	Subtotal       decimal.Decimal
	Target         decimal.Decimal
	Factor         decimal.Decimal
	Allocations    []Allocation
	TotalAllocated decimal.Decimal
}

// Drift returns TotalAllocated minus Target. It is zero when every
// discounted price divided evenly.
func (r Result) Drift() decimal.Decimal {
	if r.Subtotal.IsZero() {
		return decimal.Zero
	}
	return r.TotalAllocated.Sub(r.Target)
}

// Subtotal sums unit price times quantity over all items.
func Subtotal(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(item.Quantity))
	}
	return total
}

// Allocate scales each item's unit price by target / Subtotal(items).
// A zero subtotal yields a zero factor and zero discounted prices. The
// returned allocations keep the order and length of items.
func Allocate(items []Item, target decimal.Decimal) Result {
	subtotal := Subtotal(items)

	factor := decimal.Zero
	if !subtotal.IsZero() {
		factor = target.DivRound(subtotal, FactorPrecision)
	}

	allocations := make([]Allocation, len(items))
	totalAllocated := decimal.Zero

	for i, item := range items {
		discounted := decimal.Zero
		if !subtotal.IsZero() {
			// price * target / subtotal, rounded half away from zero.
			discounted = item.UnitPrice.Mul(target).DivRound(subtotal, 0)
		}
		allocations[i] = Allocation{
			UnitPrice:       item.UnitPrice,
			Quantity:        item.Quantity,
			DiscountedPrice: discounted,
		}
		totalAllocated = totalAllocated.Add(discounted.Mul(item.Quantity))
	}

	return Result{
		Subtotal:       subtotal,
		Target:         target,
		Factor:         factor,
		Allocations:    allocations,
		TotalAllocated: totalAllocated,
	}
}
