package worksheet

import (
	"fmt"

	"github.com/eshaffer321/discount-form/internal/domain/amount"
)

// Field names a text input on the form.
type Field string

const (
	FieldPrice    Field = "price"
	FieldQty      Field = "qty"
	FieldDiscount Field = "discount"
)

// Event is a text-change on one input. Row is ignored for FieldDiscount.
type Event struct {
	Field Field  `json:"field"`
	Row   int    `json:"row"`
	Value string `json:"value"`
}

// Apply processes one event and restores the trailing blank row.
// On error the original state is returned unchanged.
func Apply(state State, ev Event) (State, error) {
	next := State{
		Items:          state.Items,
		DiscountTarget: state.DiscountTarget,
	}

	var err error
	switch ev.Field {
	case FieldPrice:
		next.Items, err = UpdateFormattedPrice(state.Items, ev.Row, ev.Value)
	case FieldQty:
		next.Items, err = UpdateQuantity(state.Items, ev.Row, ev.Value)
	case FieldDiscount:
		next.DiscountTarget = UpdateDiscountTarget(ev.Value)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownField, ev.Field)
	}
	if err != nil {
		return state, err
	}

	next.Items = MaybeGrowList(next.Items)
	return next, nil
}

// ApplyAll applies events in order. It stops at the first failing event
// and returns the state reached before it.
func ApplyAll(state State, events []Event) (State, error) {
	state.Items = MaybeGrowList(state.Items)
	for i, ev := range events {
		next, err := Apply(state, ev)
		if err != nil {
			return state, fmt.Errorf("event %d: %w", i, err)
		}
		state = next
	}
	return state, nil
}

// RejectedKeys returns the keystrokes vetoed in amount fields: exponent
// and sign characters.
func RejectedKeys() []string {
	return []string{"e", "-"}
}

// AcceptKey reports whether a keystroke may reach an amount field.
func AcceptKey(key string) bool {
	for _, k := range RejectedKeys() {
		if key == k {
			return false
		}
	}
	return true
}

// Normalize rebuilds a state from raw field values as submitted by a plain
// HTML form, passing each through the same transforms as the edit events.
// Missing quantities are treated as empty.
func Normalize(prices, qtys []string, discount string) State {
	items := make(ItemList, len(prices))
	for i, p := range prices {
		items[i].Price = amount.Group(p)
		if i < len(qtys) {
			items[i].Qty = amount.StripNonDigits(qtys[i])
		}
	}
	return State{
		Items:          MaybeGrowList(items),
		DiscountTarget: UpdateDiscountTarget(discount),
	}
}
