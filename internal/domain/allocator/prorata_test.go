package allocator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(price, qty string) Item {
	return Item{UnitPrice: d(price), Quantity: d(qty)}
}

func TestSubtotal(t *testing.T) {
	items := []Item{
		item("10000", "2"),
		item("5000", "1"),
	}

	assert.Equal(t, "25000", Subtotal(items).String())
}

func TestSubtotal_SingleItemIsPriceTimesQuantity(t *testing.T) {
	tests := []struct {
		price string
		qty   string
	}{
		{"0", "0"},
		{"0", "7"},
		{"1", "1"},
		{"1500", "3"},
		{"99999", "100"},
		{"123456789012345678901", "1000"},
	}

	for _, tt := range tests {
		want := d(tt.price).Mul(d(tt.qty))
		got := Subtotal([]Item{item(tt.price, tt.qty)})
		assert.True(t, want.Equal(got), "Subtotal(%s x %s) = %s", tt.price, tt.qty, got)
	}
}

func TestSubtotal_Empty(t *testing.T) {
	assert.True(t, Subtotal(nil).IsZero())
}

func TestAllocate_BasicProRata(t *testing.T) {
	// 10.000 x 2 + 5.000 x 1 = 25.000, target 20.000 (20% off)
	items := []Item{
		item("10000", "2"),
		item("5000", "1"),
	}

	result := Allocate(items, d("20000"))

	assert.Equal(t, "25000", result.Subtotal.String())
	assert.True(t, d("0.8").Equal(result.Factor), "factor = %s", result.Factor)

	require.Len(t, result.Allocations, 2)
	assert.Equal(t, "8000", result.Allocations[0].DiscountedPrice.String())
	assert.Equal(t, "4000", result.Allocations[1].DiscountedPrice.String())

	// Line totals after discount
	assert.Equal(t, "16000", result.Allocations[0].DiscountedTotal().String())
	assert.Equal(t, "4000", result.Allocations[1].DiscountedTotal().String())

	assert.Equal(t, "20000", result.TotalAllocated.String())
	assert.True(t, result.Drift().IsZero())
}

func TestAllocate_PriceIncrease(t *testing.T) {
	// Target above subtotal scales prices up (e.g. tax or service charge)
	items := []Item{
		item("60000", "1"),
		item("40000", "1"),
	}

	result := Allocate(items, d("106000"))

	assert.True(t, d("1.06").Equal(result.Factor))
	assert.Equal(t, "63600", result.Allocations[0].DiscountedPrice.String())
	assert.Equal(t, "42400", result.Allocations[1].DiscountedPrice.String())
}

func TestAllocate_RoundsHalfAwayFromZero(t *testing.T) {
	// factor = 1/2, so 5 -> 2.5 -> 3 and 3 -> 1.5 -> 2
	items := []Item{
		item("5", "1"),
		item("3", "1"),
		item("2", "1"),
	}

	result := Allocate(items, d("5"))

	assert.Equal(t, "3", result.Allocations[0].DiscountedPrice.String())
	assert.Equal(t, "2", result.Allocations[1].DiscountedPrice.String())
	assert.Equal(t, "1", result.Allocations[2].DiscountedPrice.String())
}

func TestAllocate_DriftIsNotCorrected(t *testing.T) {
	// Three equal items sharing 100 -> 33.33 each, rounded to 33
	items := []Item{
		item("1000", "1"),
		item("1000", "1"),
		item("1000", "1"),
	}

	result := Allocate(items, d("100"))

	for _, a := range result.Allocations {
		assert.Equal(t, "33", a.DiscountedPrice.String())
	}
	assert.Equal(t, "99", result.TotalAllocated.String())
	assert.Equal(t, "-1", result.Drift().String())
}

func TestAllocate_ZeroSubtotal(t *testing.T) {
	items := []Item{
		item("0", "3"),
		item("5000", "0"),
	}

	result := Allocate(items, d("10000"))

	assert.True(t, result.Factor.IsZero())
	for _, a := range result.Allocations {
		assert.True(t, a.DiscountedPrice.IsZero())
	}
	assert.True(t, result.Drift().IsZero())
}

func TestAllocate_ZeroTarget(t *testing.T) {
	items := []Item{
		item("10000", "2"),
		item("5000", "1"),
	}

	result := Allocate(items, decimal.Zero)

	assert.True(t, result.Factor.IsZero())
	for _, a := range result.Allocations {
		assert.True(t, a.DiscountedPrice.IsZero())
	}
}

func TestAllocate_PreservesOrderAndLength(t *testing.T) {
	items := []Item{
		item("300", "1"),
		item("100", "2"),
		item("0", "1"),
		item("200", "5"),
	}

	for _, target := range []string{"0", "1", "750", "1000000"} {
		result := Allocate(items, d(target))
		require.Len(t, result.Allocations, len(items))
		for i, a := range result.Allocations {
			assert.True(t, items[i].UnitPrice.Equal(a.UnitPrice))
			assert.True(t, items[i].Quantity.Equal(a.Quantity))
		}
	}
}

func TestAllocate_Empty(t *testing.T) {
	result := Allocate(nil, d("1000"))

	assert.Empty(t, result.Allocations)
	assert.True(t, result.Subtotal.IsZero())
	assert.True(t, result.Factor.IsZero())
}

func TestAllocate_LargeValues(t *testing.T) {
	items := []Item{
		item("900000000000000000000", "1"),
		item("100000000000000000000", "1"),
	}

	result := Allocate(items, d("500000000000000000000"))

	assert.Equal(t, "450000000000000000000", result.Allocations[0].DiscountedPrice.String())
	assert.Equal(t, "50000000000000000000", result.Allocations[1].DiscountedPrice.String())
}

func TestAllocate_FactorValues(t *testing.T) {
	tests := []struct {
		name       string
		subtotal   string
		target     string
		wantFactor string
	}{
		{"5% discount", "100000", "95000", "0.95"},
		{"10% discount", "100000", "90000", "0.9"},
		{"half price", "100000", "50000", "0.5"},
		{"net zero", "100000", "100000", "1"},
		{"6% increase", "100000", "106000", "1.06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Allocate([]Item{item(tt.subtotal, "1")}, d(tt.target))
			assert.True(t, d(tt.wantFactor).Equal(result.Factor), "factor = %s", result.Factor)
		})
	}
}

func BenchmarkAllocate(b *testing.B) {
	items := make([]Item, 20)
	for i := range items {
		items[i] = Item{UnitPrice: decimal.NewFromInt(int64(1000 + i*250)), Quantity: decimal.NewFromInt(int64(1 + i%3))}
	}
	target := decimal.NewFromInt(250000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Allocate(items, target)
	}
}
