package amount

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestStripNonDigits(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"123", "123"},
		{"1.234.567", "1234567"},
		{"Rp 12,500", "12500"},
		{"-42", "42"},
		{"1e5", "15"},
		{"abc", ""},
		{"٣٤", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StripNonDigits(tt.input), "StripNonDigits(%q)", tt.input)
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"7", "7"},
		{"999", "999"},
		{"1000", "1.000"},
		{"12345", "12.345"},
		{"123456", "123.456"},
		{"1234567", "1.234.567"},
		{"10.0000", "100.000"},
		{"0012", "0.012"},
		{"x1y2z3w4", "1.234"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Group(tt.input), "Group(%q)", tt.input)
	}
}

func TestGroup_Idempotent(t *testing.T) {
	inputs := []string{"1", "1000", "1234567", "98765432109876543210", "5.000", "12a34"}

	for _, in := range inputs {
		once := Group(in)
		assert.Equal(t, once, Group(once), "Group should be a fixed point on %q", once)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "0"},
		{"0", "0"},
		{"1", "1"},
		{"10.000", "10000"},
		{"1.234.567", "1234567"},
		{"12a", "0"},
		{"-5", "0"},
		{"...", "0"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Parse(tt.input).String(), "Parse(%q)", tt.input)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1.000"},
		{16000, "16.000"},
		{1234567, "1.234.567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCurrency(decimal.NewFromInt(tt.input)), "FormatCurrency(%d)", tt.input)
	}
}

func TestFormatCurrency_RoundsToWholeUnits(t *testing.T) {
	assert.Equal(t, "1.001", FormatCurrency(decimal.RequireFromString("1000.5")))
	assert.Equal(t, "1.000", FormatCurrency(decimal.RequireFromString("1000.49")))
}

func TestFormatCurrency_BeyondInt64(t *testing.T) {
	d := decimal.RequireFromString("123456789012345678901234")
	assert.Equal(t, "123.456.789.012.345.678.901.234", FormatCurrency(d))
}

func TestFormatCurrency_ConsistentWithGroup(t *testing.T) {
	values := []int64{0, 1, 12, 123, 1234, 12345, 123456, 1234567, 9876543210}

	for _, n := range values {
		d := decimal.NewFromInt(n)
		formatted := FormatCurrency(d)

		// Same convention as the grouping transform.
		assert.Equal(t, Group(d.String()), formatted)

		// Stripping separators and reparsing yields the original value.
		reparsed := Parse(strings.ReplaceAll(formatted, Separator, ""))
		assert.True(t, d.Equal(reparsed), "round trip of %d gave %s", n, reparsed)
	}
}

func TestNewFormatterFromString(t *testing.T) {
	t.Run("valid tag", func(t *testing.T) {
		f := NewFormatterFromString("id-ID")
		base, _ := f.Tag().Base()
		assert.Equal(t, "id", base.String())
	})

	t.Run("invalid tag falls back to Indonesian", func(t *testing.T) {
		f := NewFormatterFromString("not a tag!")
		assert.Equal(t, language.Indonesian, f.Tag())
		assert.Equal(t, "25.000", f.Format(decimal.NewFromInt(25000)))
	})
}

func TestFormatter_NonPeriodLocaleKeepsPeriodGrouping(t *testing.T) {
	f := NewFormatterFromString("en-US")

	base, _ := f.Tag().Base()
	assert.Equal(t, "en", base.String())
	assert.False(t, GroupsWithPeriod(f.Tag()))

	assert.Equal(t, "1.234.567", f.Format(decimal.NewFromInt(1234567)))
	assert.Equal(t, "123.456.789.012.345.678.901.234",
		f.Format(decimal.RequireFromString("123456789012345678901234")))
}

func TestGroupsWithPeriod(t *testing.T) {
	assert.True(t, GroupsWithPeriod(language.Indonesian))
	assert.True(t, GroupsWithPeriod(language.German))
	assert.False(t, GroupsWithPeriod(language.AmericanEnglish))
}
