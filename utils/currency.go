package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency formats an amount in the Indian grouping style
// (12,34,567.89): the last three digits form one group, the rest pair up.
func FormatCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	var result []string
	if len(integerPart) > 3 {
		result = append(result, integerPart[len(integerPart)-3:])
		rest := integerPart[:len(integerPart)-3]
		for i := len(rest); i > 0; i -= 2 {
			start := i - 2
			if start < 0 {
				start = 0
			}
			result = append([]string{rest[start:i]}, result...)
		}
	} else {
		result = append(result, integerPart)
	}

	out := strings.Join(result, ",") + "." + decimalPart
	if negative {
		out = "-" + out
	}
	return out
}
