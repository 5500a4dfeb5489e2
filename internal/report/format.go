package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numberPrinter formats integers with English digit grouping ("12,345").
var numberPrinter = message.NewPrinter(language.English)

// FormatBytes formats a byte count with thousands separators.
func FormatBytes(n int64) string {
	return numberPrinter.Sprintf("%d", n)
}

// FormatPercent formats a percentage with one decimal place ("80.0%").
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
