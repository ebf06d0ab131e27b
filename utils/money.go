package utils

import (
	"strconv"
	"strings"
)

// FormatCOP formats an integer COP amount as "$119.000", using dot as the
// thousands separator (es-CO convention). No fractional subunits exist.
func FormatCOP(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3 + 2)
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	// First group holds the leftover digits, the rest come in threes.
	first := len(digits) % 3
	if first == 0 {
		first = 3
	}
	b.WriteString(digits[:first])
	for i := first; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
