package views

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// RelativeTime describes t relative to now using a single unit, e.g.
// "3d ago", "in 5m", or "Just now" when they fall in the same second.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t).Truncate(time.Second)
	if d == 0 {
		return "Just now"
	}

	past := d > 0
	if !past {
		d = -d
	}

	var amount string
	switch {
	case d >= day:
		amount = fmt.Sprintf("%dd", d/day)
	case d >= time.Hour:
		amount = fmt.Sprintf("%dh", d/time.Hour)
	case d >= time.Minute:
		amount = fmt.Sprintf("%dm", d/time.Minute)
	default:
		amount = fmt.Sprintf("%ds", d/time.Second)
	}

	if past {
		return amount + " ago"
	}
	return "in " + amount
}

// formatDate is used where an absolute date reads better than a relative one
func formatDate(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
