// Package valueobject contains domain value objects for the financial education platform.
package valueobject

import "strings"

// cpfDigits is the number of significant digits in a CPF.
const cpfDigits = 11

// FormatCPF masks a CPF as XXX.XXX.XXX-XX. Non-digits are dropped and anything
// past the 11th digit is truncated. Partial input is masked as far as it goes,
// so the function can be applied on every keystroke.
func FormatCPF(text string) string {
	digits := OnlyDigits(text)
	if len(digits) > cpfDigits {
		digits = digits[:cpfDigits]
	}

	var b strings.Builder
	for i, r := range digits {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// OnlyDigits returns the ASCII digits of text in order.
func OnlyDigits(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
