// Package format renders raw figures as display strings for the dashboard.
package format

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Compact renders a quantity in K/M notation with one decimal place;
// values under a thousand come back as grouped integers.
func Compact(raw any) string {

	val := coerce(raw)

	switch {
	case val >= 1_000_000 || val <= -1_000_000:
		return fmt.Sprintf("%.1fM", val/1_000_000)
	case val >= 1_000 || val <= -1_000:
		return fmt.Sprintf("%.1fK", val/1_000)
	default:
		return printer.Sprintf("%d", int64(val))
	}
}

// Currency renders a USD amount with grouping and two decimal places.
func Currency(raw any) string {
	return printer.Sprintf("$%.2f", coerce(raw))
}

// Percent renders a ratio as a percentage with the given decimal places.
func Percent(ratio float64, places int) string {
	return fmt.Sprintf("%.*f%%", places, ratio*100)
}

// unexported

// coerce extracts a float64, degrading to zero on malformed input so a bad
// api field shows as a zero cell rather than breaking the render.
func coerce(raw any) (val float64) {

	switch typed := raw.(type) {
	case float64:
		val = typed
	case float32:
		val = float64(typed)
	case int:
		val = float64(typed)
	case int64:
		val = float64(typed)
	case string:
		val, _ = strconv.ParseFloat(typed, 64)
	}
	return
}
