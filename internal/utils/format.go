package utils

import (
	"fmt"
	"time"
)

const DateTimeSec = "2006-01-02 15:04:05"

// Currency formats an INR amount with the rupee symbol.
func Currency(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// TimeOrDash formats a time value using the given layout, or returns "—" if zero.
func TimeOrDash(t time.Time, layout string) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format(layout)
}

// Truncate shortens s to at most max runes, appending "..." when it
// cuts. Rune-based so multi-byte text is never split mid-character.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
