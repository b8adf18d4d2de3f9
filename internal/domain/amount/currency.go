package amount

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// Formatter renders whole currency amounts with period grouping and no
// currency symbol. The locale picks the printer only when that locale also
// groups with a period; otherwise Indonesian grouping is used and the tag is
// kept for labelling (e.g. the page's lang attribute).
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter returns a Formatter for the given locale.
func NewFormatter(tag language.Tag) *Formatter {
	printer := message.NewPrinter(tag)
	if !groupsWithSeparator(printer) {
		printer = message.NewPrinter(language.Indonesian)
	}
	return &Formatter{
		tag:     tag,
		printer: printer,
	}
}

// GroupsWithPeriod reports whether tag formats thousands as "1.000".
func GroupsWithPeriod(tag language.Tag) bool {
	return groupsWithSeparator(message.NewPrinter(tag))
}

func groupsWithSeparator(p *message.Printer) bool {
	return strings.TrimSpace(p.Sprintf("%d", 1234567)) == Group("1234567")
}

// NewFormatterFromString parses a BCP 47 tag such as "id-ID". Unknown or
// malformed tags fall back to Indonesian.
func NewFormatterFromString(tag string) *Formatter {
	t, err := language.Parse(tag)
	if err != nil || t == language.Und {
		return NewFormatter(language.Indonesian)
	}
	return NewFormatter(t)
}

// Tag returns the locale the formatter was built for.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Format rounds d to a whole number and renders it with zero decimals.
// Values beyond the int64 range keep the period grouping of Group.
func (f *Formatter) Format(d decimal.Decimal) string {
	d = d.Round(0)
	if d.Abs().GreaterThan(maxInt64) {
		grouped := Group(d.Abs().String())
		if d.IsNegative() {
			return "-" + grouped
		}
		return grouped
	}
	return strings.TrimSpace(f.printer.Sprintf("%d", d.IntPart()))
}

var defaultFormatter = NewFormatter(language.Indonesian)

// FormatCurrency renders d in the worksheet's default locale (Indonesian
// rupiah grouping, e.g. "1.250.000").
func FormatCurrency(d decimal.Decimal) string {
	return defaultFormatter.Format(d)
}
