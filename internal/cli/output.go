package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/eshaffer321/discount-form/internal/domain/worksheet"
)

// PrintHeader prints the application header
func PrintHeader(w io.Writer, locale string) {
	fmt.Fprintf(w, "discount-form: calc (locale %s)\n\n", locale)
}

// PrintWorksheet prints the rows and summary of a rendered worksheet
func PrintWorksheet(w io.Writer, view worksheet.View) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tPrice\tQty\tTotal\tAfter discount\tLine after discount\t")
	for i, row := range view.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			i+1, row.Price, row.Qty, row.Total, row.DiscountedPrice, row.DiscountedTotal)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "Total before discount: %s\n", view.TotalBeforeDiscount)
	fmt.Fprintf(w, "Target after discount: %s\n", view.DiscountTarget)
	fmt.Fprintf(w, "Allocated:             %s (factor %s, drift %s)\n",
		view.TotalAfterDiscount, view.DiscountFactor, view.Drift)
	return nil
}

// PrintJSON prints v as indented JSON
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
