package worksheet

import (
	"github.com/shopspring/decimal"

	"github.com/eshaffer321/discount-form/internal/domain/allocator"
	"github.com/eshaffer321/discount-form/internal/domain/amount"
)

// DiscountedLineItem is a row together with its allocated discount.
// It is derived on every render and never stored.
type DiscountedLineItem struct {
	LineItem
	DiscountedPrice decimal.Decimal
}

// Row is a rendered table row.
type Row struct {
	Price           string `json:"price"`
	Qty             string `json:"qty"`
	Total           string `json:"total"`
	DiscountedPrice string `json:"discounted_price"`
	DiscountedTotal string `json:"discounted_total"`
}

// View is the rendered form.
type View struct {
	Rows                []Row  `json:"rows"`
	TotalBeforeDiscount string `json:"total_before_discount"`
	DiscountTarget      string `json:"discount_target"`
	TotalAfterDiscount  string `json:"total_after_discount"`
	Drift               string `json:"drift"`
	DiscountFactor      string `json:"discount_factor"`
}

func toAllocatorItems(items ItemList) []allocator.Item {
	out := make([]allocator.Item, len(items))
	for i, item := range items {
		out[i] = allocator.Item{
			UnitPrice: amount.Parse(item.Price),
			Quantity:  amount.Parse(item.Qty),
		}
	}
	return out
}

// Subtotal is the pre-discount total. Unparseable fields count as zero.
func Subtotal(items ItemList) decimal.Decimal {
	return allocator.Subtotal(toAllocatorItems(items))
}

// Allocate computes the discounted price of every row for the given
// target. The result has the same length and order as items.
func Allocate(items ItemList, target string) []DiscountedLineItem {
	result := allocator.Allocate(toAllocatorItems(items), amount.Parse(target))

	out := make([]DiscountedLineItem, len(items))
	for i, item := range items {
		out[i] = DiscountedLineItem{
			LineItem:        item,
			DiscountedPrice: result.Allocations[i].DiscountedPrice,
		}
	}
	return out
}

// Renderer projects a State into a View using a currency formatter.
type Renderer struct {
	formatter *amount.Formatter
}

// NewRenderer creates a renderer. A nil formatter uses the default locale.
func NewRenderer(formatter *amount.Formatter) *Renderer {
	return &Renderer{formatter: formatter}
}

func (r *Renderer) format(d decimal.Decimal) string {
	if r == nil || r.formatter == nil {
		return amount.FormatCurrency(d)
	}
	return r.formatter.Format(d)
}

// Render builds the view for state. It is a pure function of state.
func (r *Renderer) Render(state State) View {
	result := allocator.Allocate(toAllocatorItems(state.Items), amount.Parse(state.DiscountTarget))

	rows := make([]Row, len(state.Items))
	for i, item := range state.Items {
		a := result.Allocations[i]

		total := decimal.Zero
		if item.Filled() {
			total = a.LineTotal()
		}

		discounted, discountedTotal := decimal.Zero, decimal.Zero
		if !a.DiscountedPrice.IsZero() && item.Qty != "" {
			discounted = a.DiscountedPrice
			discountedTotal = a.DiscountedTotal()
		}

		rows[i] = Row{
			Price:           item.Price,
			Qty:             item.Qty,
			Total:           r.format(total),
			DiscountedPrice: r.format(discounted),
			DiscountedTotal: r.format(discountedTotal),
		}
	}

	return View{
		Rows:                rows,
		TotalBeforeDiscount: r.format(result.Subtotal),
		DiscountTarget:      state.DiscountTarget,
		TotalAfterDiscount:  r.format(result.TotalAllocated),
		Drift:               result.Drift().String(),
		DiscountFactor:      result.Factor.String(),
	}
}

// Render builds the view with the default formatter.
func Render(state State) View {
	return NewRenderer(nil).Render(state)
}
