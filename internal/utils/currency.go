package utils

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// RoundAmount rounds to the nearest whole currency unit for display
func RoundAmount(amount float64) int64 {
	return int64(math.Round(amount))
}

// FormatAmount renders an amount as "KES 1,050" using the ISO currency code.
// An unknown or empty code falls back to the bare grouped number.
func FormatAmount(amount float64, currencyCode string) string {
	rounded := RoundAmount(amount)
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "" {
		return amountPrinter.Sprintf("%d", rounded)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return amountPrinter.Sprintf("%d", rounded)
	}

	return fmt.Sprintf("%s %s", unit.String(), amountPrinter.Sprintf("%d", rounded))
}

// ValidCurrencyCode reports whether code is a known ISO 4217 code
func ValidCurrencyCode(code string) bool {
	_, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	return err == nil
}
