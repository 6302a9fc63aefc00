package widgets

import (
	"fmt"
	"strings"
	"time"
)

// FormatBalance renders a balance with thousands separators and two decimal
// places: 1234.5 becomes "1,234.50", 0 becomes "0.00".
func FormatBalance(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// truncate shortens a string to at most n runes, appending an ellipsis when
// anything was cut.
func truncate(s string, n int) string {
	if n <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// shortHash keeps the first and last four characters of a long hash.
func shortHash(h string) string {
	if len(h) <= 11 {
		return h
	}
	return h[:4] + "…" + h[len(h)-4:]
}

// timeAgo renders a coarse relative timestamp.
func timeAgo(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	switch {
	case d < time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// meter renders n of total filled blocks, e.g. "███░░".
func meter(n, total int) string {
	if total < 1 {
		return ""
	}
	if n < 0 {
		n = 0
	}
	if n > total {
		n = total
	}
	return strings.Repeat("█", n) + strings.Repeat("░", total-n)
}
