package summarize

import (
	"fmt"
	"regexp"
	"time"
)

var isoDateRe = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)

// FormatLongDate renders an ISO date as "Tuesday, 2 September 2025".
// Unparseable input is returned unchanged so a bad scraper date still
// produces a usable post.
func FormatLongDate(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%s, %d %s %d", d.Weekday(), d.Day(), d.Month(), d.Year())
}

// RewriteDateInTitle replaces any embedded ISO date in a title with its
// long form, so titles read the same way as the post header
func RewriteDateInTitle(title string) string {
	return isoDateRe.ReplaceAllStringFunc(title, FormatLongDate)
}
