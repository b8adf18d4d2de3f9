// Package worksheet holds the editable discount form: an ordered list of
// line items plus the discount target typed by the user.
//
// All operations take the current value and return a new one. Callers own
// the State and replace it after each event; nothing here keeps state.
package worksheet

import (
	"errors"
	"fmt"

	"github.com/eshaffer321/discount-form/internal/domain/amount"
)

// DefaultQuantity is the quantity a freshly created row starts with.
const DefaultQuantity = "1"

var (
	// ErrRowOutOfRange is returned when an event addresses a row that does not exist.
	ErrRowOutOfRange = errors.New("row out of range")
	// ErrUnknownField is returned for events with an unrecognized field.
	ErrUnknownField = errors.New("unknown field")
)

// LineItem is one row of the form. Price is kept in its grouped display
// form ("10.000"); Qty is a plain digit string.
type LineItem struct {
	Price string `json:"price"`
	Qty   string `json:"qty"`
}

// Filled reports whether both price and quantity are set.
func (li LineItem) Filled() bool {
	return li.Price != "" && li.Qty != ""
}

// ItemList is the ordered list of rows. Order is display order.
type ItemList []LineItem

// State is everything the form knows.
type State struct {
	Items          ItemList `json:"items"`
	DiscountTarget string   `json:"discount_target"`
}

// New returns the initial state: a single blank row and no target.
func New() State {
	return State{Items: MaybeGrowList(nil)}
}

// BlankItem returns the row appended when the list grows.
func BlankItem() LineItem {
	return LineItem{Price: "", Qty: DefaultQuantity}
}

func (l ItemList) clone() ItemList {
	out := make(ItemList, len(l))
	copy(out, l)
	return out
}

func (l ItemList) checkIndex(index int) error {
	if index < 0 || index >= len(l) {
		return fmt.Errorf("%w: %d (rows: %d)", ErrRowOutOfRange, index, len(l))
	}
	return nil
}

// UpdateQuantity stores the digits of raw as the quantity of row index.
// An empty result is valid and means the quantity is unset.
func UpdateQuantity(items ItemList, index int, raw string) (ItemList, error) {
	if err := items.checkIndex(index); err != nil {
		return items, err
	}
	out := items.clone()
	out[index].Qty = amount.StripNonDigits(raw)
	return out, nil
}

// UpdateFormattedPrice stores raw, reduced to digits and regrouped, as the
// price of row index.
func UpdateFormattedPrice(items ItemList, index int, raw string) (ItemList, error) {
	if err := items.checkIndex(index); err != nil {
		return items, err
	}
	out := items.clone()
	out[index].Price = amount.Group(raw)
	return out, nil
}

// UpdateDiscountTarget applies the grouping transform to the target field.
func UpdateDiscountTarget(raw string) string {
	return amount.Group(raw)
}

// MaybeGrowList appends a blank row when the list is empty or its last row
// is filled. The list never shrinks.
func MaybeGrowList(items ItemList) ItemList {
	if len(items) == 0 || items[len(items)-1].Filled() {
		out := make(ItemList, len(items), len(items)+1)
		copy(out, items)
		return append(out, BlankItem())
	}
	return items
}
