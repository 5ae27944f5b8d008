package utils

import (
	"fmt"
	"strings"
)

// FormatCurrencyEUR formats an amount the way the storefront displays prices:
// two decimals, comma separator, trailing euro sign. 12.5 -> "12,50€"
func FormatCurrencyEUR(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)
	return strings.Replace(formatted, ".", ",", 1) + "€"
}
