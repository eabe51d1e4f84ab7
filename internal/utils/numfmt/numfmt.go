// Package numfmt converts between locale grouped display strings ("12,345.5")
// and exact decimal amounts for currency fields.
package numfmt

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxFractionDigits is the most fraction digits a formatted value keeps.
const MaxFractionDigits = 3

// MaxIntegerDigits is the longest integer part an entered amount may have.
const MaxIntegerDigits = 15

const (
	// maxDisplayDigits bounds the integer part FormatDecimal renders. Sums of in-range
	// amounts stay well below it.
	maxDisplayDigits = 30
	// maxScale bounds the fraction digits a value may carry before rounding.
	maxScale = 32
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// Formatter formats and parses amounts for one locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	group   string
	decimal string
}

// New creates a Formatter for a BCP-47 locale such as "en-US" or "de-DE".
func New(locale string) (*Formatter, error) {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid number locale %q: %w", locale, err)
	}
	f := &Formatter{tag: tag, printer: message.NewPrinter(tag)}
	f.group, f.decimal = detectSeparators(f.printer)
	return f, nil
}

// detectSeparators renders a probe value and reads back the grouping and decimal separators.
func detectSeparators(p *message.Printer) (group, dec string) {
	probe := p.Sprintf("%.1f", 1234567.5)
	i1 := strings.Index(probe, "1")
	i2 := strings.Index(probe, "2")
	i7 := strings.Index(probe, "7")
	i5 := strings.LastIndex(probe, "5")
	if i1 < 0 || i2 <= i1 || i7 < 0 || i5 <= i7 {
		return ",", "."
	}
	group = probe[i1+1 : i2]
	dec = probe[i7+1 : i5]
	if dec == "" {
		dec = "."
	}
	return group, dec
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Separators returns the grouping and decimal separators of the locale.
func (f *Formatter) Separators() (group, dec string) {
	return f.group, f.decimal
}

// normalize strips grouping separators and rewrites the locale decimal separator to ".".
func (f *Formatter) normalize(value string) string {
	s := strings.TrimSpace(value)
	if f.group != "" {
		s = strings.ReplaceAll(s, f.group, "")
	}
	// Whitespace grouping comes in several flavours (space, NBSP, narrow NBSP).
	if strings.TrimSpace(f.group) == "" {
		s = strings.Map(func(r rune) rune {
			if r == ' ' || r == '\u00a0' || r == '\u202f' {
				return -1
			}
			return r
		}, s)
	}
	if f.decimal != "." {
		s = strings.ReplaceAll(s, f.decimal, ".")
	}
	return s
}

// Parse strips grouping separators and parses the remainder.
// ok is false for blank or unparsable input, exponent notation and amounts outside InRange.
func (f *Formatter) Parse(display string) (decimal.Decimal, bool) {
	s := f.normalize(display)
	if s == "" || strings.ContainsAny(s, "eE") {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !InRange(d) {
		return decimal.Zero, false
	}
	return d, true
}

// InRange reports whether d fits an amount field: at most MaxIntegerDigits integer digits
// and a bounded scale. Both are read from the coefficient and exponent without expanding d.
func InRange(d decimal.Decimal) bool {
	return fits(d, MaxIntegerDigits)
}

func fits(d decimal.Decimal, integerDigits int) bool {
	exp := int(d.Exponent())
	return exp >= -maxScale && d.NumDigits()+exp <= integerDigits
}

// Format re-renders a raw or already grouped value with locale grouping.
// It returns "" for blank or non-numeric input.
func (f *Formatter) Format(value string) string {
	d, ok := f.Parse(value)
	if !ok {
		return ""
	}
	return f.FormatDecimal(d)
}

// FormatDecimal renders d grouped, with no fixed number of fraction digits.
// Values too large to display render as "".
func (f *Formatter) FormatDecimal(d decimal.Decimal) string {
	if !fits(d, maxDisplayDigits) {
		return ""
	}
	d = d.Round(MaxFractionDigits)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	// String drops trailing zeros, so the fraction is exactly the significant digits.
	plain := d.String()
	intPart, frac, _ := strings.Cut(plain, ".")

	var grouped string
	if d.LessThan(maxExactInt) {
		grouped = f.printer.Sprintf("%d", d.IntPart())
	} else {
		grouped = groupDigits(intPart, f.group)
	}
	if frac == "" {
		return sign + grouped
	}
	return sign + grouped + f.decimal + frac
}

var maxExactInt = decimal.NewFromInt(1 << 62)

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

var (
	defaultMu        sync.RWMutex
	defaultFormatter = mustNew(DefaultLocale)
)

func mustNew(locale string) *Formatter {
	f, err := New(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// SetDefault replaces the formatter used by the package level helpers.
func SetDefault(f *Formatter) {
	if f == nil {
		return
	}
	defaultMu.Lock()
	defaultFormatter = f
	defaultMu.Unlock()
}

// Default returns the formatter used by the package level helpers.
func Default() *Formatter {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFormatter
}

// FormatNumber formats value with the default formatter.
func FormatNumber(value string) string {
	return Default().Format(value)
}

// ParseNumber parses display with the default formatter.
func ParseNumber(display string) (decimal.Decimal, bool) {
	return Default().Parse(display)
}
