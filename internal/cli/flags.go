package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/eshaffer321/discount-form/internal/domain/amount"
	"github.com/eshaffer321/discount-form/internal/domain/worksheet"
)

// ServeFlags holds the CLI flags for the serve command.
type ServeFlags struct {
	Port    int
	Verbose bool
}

// ParseServeFlags parses flags for the serve command. A zero port means
// "use the configured port".
func ParseServeFlags(args []string, output io.Writer) (*ServeFlags, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(output)

	flags := &ServeFlags{}
	fs.IntVar(&flags.Port, "port", 0, "Port to listen on (default from config)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

// itemList collects repeated -item flags.
type itemList []worksheet.LineItem

func (l *itemList) String() string {
	parts := make([]string, len(*l))
	for i, item := range *l {
		parts[i] = item.Price + "x" + item.Qty
	}
	return strings.Join(parts, ",")
}

// Set parses PRICE or PRICExQTY. Price may be grouped ("10.000x2").
func (l *itemList) Set(value string) error {
	price, qty, found := strings.Cut(strings.ToLower(value), "x")
	if !found {
		qty = worksheet.DefaultQuantity
	}
	if amount.StripNonDigits(price) == "" {
		return fmt.Errorf("invalid item %q: missing price", value)
	}
	if amount.StripNonDigits(qty) == "" {
		return fmt.Errorf("invalid item %q: missing quantity", value)
	}

	*l = append(*l, worksheet.LineItem{
		Price: amount.Group(price),
		Qty:   amount.StripNonDigits(qty),
	})
	return nil
}

// CalcFlags holds the CLI flags for the calc command.
type CalcFlags struct {
	Items  []worksheet.LineItem
	Target string
	Locale string
	JSON   bool
}

// ParseCalcFlags parses flags for the calc command. Positional arguments
// are accepted as additional items.
func ParseCalcFlags(args []string, output io.Writer) (*CalcFlags, error) {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(output)

	var items itemList
	flags := &CalcFlags{}
	fs.Var(&items, "item", "Line item as PRICE or PRICExQTY (repeatable)")
	fs.StringVar(&flags.Target, "target", "", "Total after discount")
	fs.StringVar(&flags.Locale, "locale", "", "Locale for currency grouping (default from config)")
	fs.BoolVar(&flags.JSON, "json", false, "Print the result as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for _, arg := range fs.Args() {
		if err := items.Set(arg); err != nil {
			return nil, err
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("at least one item is required")
	}

	flags.Items = items
	flags.Target = worksheet.UpdateDiscountTarget(flags.Target)
	return flags, nil
}

// State builds the worksheet the flags describe.
func (f *CalcFlags) State() worksheet.State {
	items := make(worksheet.ItemList, len(f.Items))
	copy(items, f.Items)
	return worksheet.State{
		Items:          items,
		DiscountTarget: f.Target,
	}
}
