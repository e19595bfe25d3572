// Package valueobject contains domain value objects for the financial education platform.
package valueobject

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// MonetaryAmount is a currency quantity in reais.
type MonetaryAmount float64

// Formatted returns the amount in pt-BR notation (1.234,56).
func (m MonetaryAmount) Formatted() string {
	return FormatNumberToCurrency(float64(m))
}

// PercentageRate is an annual rate stored as the numeric percentage (10.5 for 10.5%).
type PercentageRate float64

// MonthlyRate converts the annual percentage into a monthly fraction (rate/100/12).
func (p PercentageRate) MonthlyRate() float64 {
	return float64(p) / 100 / 12
}

// ParseCurrencyToNumber parses a pt-BR formatted number ("1.234,56") into a float.
// Malformed or empty input yields zero.
func ParseCurrencyToNumber(text string) float64 {
	return ParseCurrencyToDecimal(text).InexactFloat64()
}

// ParseCurrencyToDecimal parses a pt-BR formatted number into an exact decimal.
// Malformed or empty input yields zero.
func ParseCurrencyToDecimal(text string) decimal.Decimal {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := strings.ReplaceAll(b.String(), ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatNumberToCurrency formats a value with two fraction digits, "." as the
// thousands separator and "," as the decimal separator.
func FormatNumberToCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0,00"
	}

	fixed := decimal.NewFromFloat(value).Round(2).StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := groupThousands(intPart)

	if negative && (grouped != "0" || fracPart != "00") {
		return "-" + grouped + "," + fracPart
	}
	return grouped + "," + fracPart
}

// FormatPercentage formats an annual rate for display ("10,50%").
func FormatPercentage(rate float64) string {
	return FormatNumberToCurrency(rate) + "%"
}

// groupThousands inserts "." every three digits from the right.
func groupThousands(digits string) string {
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
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
