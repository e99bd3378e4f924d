package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatNumber renders v with the digit grouping of lang. Whole numbers
// print without decimals.
func FormatNumber(lang string, v float64) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return p.Sprintf("%d", int64(v))
	}
	return p.Sprintf("%.2f", v)
}
