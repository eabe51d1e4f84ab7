package numfmt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain integer", "12345", "12,345"},
		{"already grouped", "1,234,567", "1,234,567"},
		{"trailing zeros dropped", "1,234.50", "1,234.5"},
		{"fraction capped", "0.12345", "0.123"},
		{"small value", "999", "999"},
		{"zero", "0", "0"},
		{"surrounding spaces", "  42 ", "42"},
		{"blank", "", ""},
		{"whitespace only", "   ", ""},
		{"not a number", "abc", ""},
		{"half typed", "12.3.4", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.input))
		})
	}
}

func TestParseNumber(t *testing.T) {
	d, ok := ParseNumber("12,345.67")
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("12345.67")))

	_, ok = ParseNumber("")
	assert.False(t, ok, "blank input yields the empty sentinel")

	_, ok = ParseNumber("twelve")
	assert.False(t, ok)

	d, ok = ParseNumber("-50")
	require.True(t, ok, "parse accepts negatives; clamping happens on commit")
	assert.True(t, d.IsNegative())
}

func TestRoundTrip(t *testing.T) {
	values := []string{"0", "0.01", "0.5", "1", "99.99", "500", "1000", "12345.6", "1234567.89", "100000000.1"}
	for _, v := range values {
		x := decimal.RequireFromString(v)
		got, ok := ParseNumber(FormatNumber(v))
		assert.True(t, ok, v)
		assert.True(t, x.Equal(got), "round trip of %s gave %s", v, got)
	}
}

func TestFormatterGermanLocale(t *testing.T) {
	f, err := New("de-DE")
	require.NoError(t, err)

	group, dec := f.Separators()
	assert.Equal(t, ".", group)
	assert.Equal(t, ",", dec)

	assert.Equal(t, "1.234,5", f.Format("1234,5"))
	d, ok := f.Parse("1.234,5")
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("1234.5")))
}

func TestNewRejectsBadLocale(t *testing.T) {
	_, err := New("not a locale!!")
	assert.Error(t, err)

	f, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "en-US", f.Locale())
}

func TestFormatDecimalLargeAndNegative(t *testing.T) {
	f := Default()
	assert.Equal(t, "-1,500", f.FormatDecimal(decimal.NewFromInt(-1500)))
	huge := decimal.RequireFromString("123456789012345678901")
	assert.Equal(t, "123,456,789,012,345,678,901", f.FormatDecimal(huge))
}

func TestExponentsAndOversizedAmountsRejected(t *testing.T) {
	for _, input := range []string{"1e50000000", "1E5", "2.5e-3", "1e-50000000", "1234567890123456"} {
		_, ok := ParseNumber(input)
		assert.False(t, ok, input)
		assert.Empty(t, FormatNumber(input), input)
	}

	d, ok := ParseNumber("999,999,999,999,999.99")
	require.True(t, ok, "fifteen integer digits are accepted")
	assert.True(t, d.Equal(decimal.RequireFromString("999999999999999.99")))
}

func TestFormatDecimalRefusesValuesTooLargeToDisplay(t *testing.T) {
	f := Default()
	assert.Empty(t, f.FormatDecimal(decimal.New(1, 50000000)))
	assert.Empty(t, f.FormatDecimal(decimal.New(1, -50000000)))
	assert.False(t, InRange(decimal.New(1, 15)))
	assert.True(t, InRange(decimal.New(1, 14)))
}
