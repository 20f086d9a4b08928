package scrapers

import (
	"regexp"
	"strings"
	"time"

	"councilbot/types"
)

// Date shapes that show up in council document titles and link text
var datePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`(?i)\b\d{1,2}\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\b`), "2 January 2006"},
	{regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}\s+\d{4}\b`), "January 2 2006"},
	{regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), "2006-01-02"},
	{regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`), "2/1/2006"},
	{regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`), "2-1-2006"},
}

var monthWordRe = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\b`)

// ExtractDate finds the first recognizable date in text and returns it
// as YYYY-MM-DD, or "" when no pattern matches. Slash and dash forms
// are read day-first, the Australian convention.
func ExtractDate(text string) string {
	for _, p := range datePatterns {
		match := p.re.FindString(text)
		if match == "" {
			continue
		}

		parsed, err := time.Parse(p.layout, normalizeMonthCase(match))
		if err != nil {
			continue
		}
		return parsed.Format("2006-01-02")
	}
	return ""
}

// normalizeMonthCase fixes "JUNE 2025" or "june 2025" so time.Parse
// accepts the month name
func normalizeMonthCase(s string) string {
	return monthWordRe.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[:1]) + strings.ToLower(m[1:])
	})
}

// classifyDocType reads agenda/minutes out of link or row text.
// Minutes wins when both words appear, matching how councils label
// combined pages.
func classifyDocType(text string) string {
	low := strings.ToLower(text)
	switch {
	case strings.Contains(low, "minutes"):
		return types.DocTypeMinutes
	case strings.Contains(low, "agenda"):
		return types.DocTypeAgenda
	default:
		return ""
	}
}
