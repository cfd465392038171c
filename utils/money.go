package utils

import (
	"fmt"
	"math"
	"strings"
)

// RoundCurrency rounds to 2 decimal places, half away from zero.
// Applied only at output boundaries; intermediate sums stay unrounded
// so rounding error does not compound.
func RoundCurrency(amount float64) float64 {
	return math.Floor(amount*100+0.5) / 100
}

// ToMinorUnits converts a rounded currency amount into integer minor
// units (cents) for the payment gateway.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Floor(amount*100 + 0.5))
}

// FormatCurrency renders an amount with thousands separators for
// receipts, e.g. 15000.5 -> "15.000,50".
func FormatCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", RoundCurrency(amount))

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	return strings.Join(result, ".") + "," + decimalPart
}
