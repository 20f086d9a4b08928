package summarize

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxPostChars is the hard platform limit for a single post
const MaxPostChars = 300

const ellipsis = "..."

// MeetingLabel maps a scraper's free-form meeting type onto a display label
func MeetingLabel(meetingType string) string {
	switch strings.ToLower(meetingType) {
	case "":
		return "Meeting"
	case "council":
		return "Council Meeting"
	case "delegated":
		return "Delegated Committee"
	case "special":
		return "Special Meeting"
	default:
		return titleCase(meetingType)
	}
}

// ComposePost renders the three-line base post: header, title, then
// URL and hashtags. The header and footer are never truncated; the
// title absorbs whatever budget remains under the 300-character limit.
func ComposePost(sourceName, docType, title, dateStr, url string, topics []string, meetingType string) string {
	hashtags := ChooseHashtags(sourceName, topics)

	header := fmt.Sprintf("%s %s %s — %s", sourceName, MeetingLabel(meetingType), titleCase(docType), FormatLongDate(dateStr))
	header = strings.TrimRight(header, " —")
	footer := url + "\n\n" + strings.Join(hashtags, " ")

	// Two blank-line separators sit between header, title and footer
	budget := MaxPostChars - runeLen(header) - runeLen(footer) - 4

	t := RewriteDateInTitle(strings.TrimSpace(title))
	if runeLen(t) > budget {
		t = truncate(t, budget)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", header, t, footer)
}

// truncate clips s to at most budget runes, appending an ellipsis when
// there is room for one. The result never exceeds budget.
func truncate(s string, budget int) string {
	if budget <= 0 {
		return ""
	}
	runes := []rune(s)
	if budget <= len(ellipsis) {
		return string(runes[:budget])
	}
	return string(runes[:budget-len(ellipsis)]) + ellipsis
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func titleCase(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
