package summarize

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// tocScanLines bounds how far into the document the TOC is looked for
	tocScanLines = 500

	// tocHeadingLines bounds the search for the "Agenda" heading itself
	tocHeadingLines = 120

	// tocWindowLines bounds the scan window after the heading
	tocWindowLines = 350

	tocMinLineLen = 10
	tocMaxLineLen = 180
)

// dottedItemRe matches one-level-down items like "12.1 Title" or
// "Item 12.1 Title". The internal dot is required: it is what separates
// real items from top-level section headers like "12 A VIBRANT COMMUNITY".
var dottedItemRe = regexp.MustCompile(`(?i)^(?:Item\s+)?\d+\.\d+(?:\.\d+)?\s+.+`)

// dotLeaderRe strips trailing dot leaders and page numbers ("..... 12")
var dotLeaderRe = regexp.MustCompile(`[\.·\s]{2,}\s*\d+$`)

var leadingDashRe = regexp.MustCompile(`^[-–:]+\s*`)

// boilerplatePhrases are standing procedural entries that satisfy the
// dotted-number pattern but are never worth posting. Data, not logic.
var boilerplatePhrases = []string{
	"apologies",
	"acknowledgement of",
	"acknowledgment of",
	"declarations of", "conflict of interest",
	"confirmation of minutes", "adoption of minutes",
	"public question", "public questions", "petitions", "presentations",
	"business", "urgent business", "confidential", "meeting closed",
	"general business", "notices of motion", "reports by councillors",
	"sealing schedule",
}

// sourceStandingSkips lists per-source boilerplate category phrases
// (e.g. recurring strategic-plan pillar headings) that look like agenda
// items but are not
var sourceStandingSkips = map[string][]string{
	"Port Phillip City Council": {
		"an engaged and empowered community",
		"a vibrant and thriving community",
		"sustainable", "well-governed",
	},
	"Port Phillip": {
		"an engaged and empowered community",
		"a vibrant and thriving community",
		"sustainable", "well-governed",
	},
}

// ExtractTOCLines pulls agenda-item lines out of the table of contents
// near the start of a meeting document. It returns nil when no
// structured TOC can be found; callers then fall back to whole-text
// scoring.
func ExtractTOCLines(text string) []string {
	if text == "" {
		return nil
	}

	rawLines := strings.Split(text, "\n")
	if len(rawLines) > tocScanLines {
		rawLines = rawLines[:tocScanLines]
	}
	lines := make([]string, len(rawLines))
	for i, l := range rawLines {
		lines[i] = strings.TrimSpace(l)
	}

	// Start scanning after a heading containing "agenda", when present
	start := 0
	headingBound := min(len(lines), tocHeadingLines)
	for i := 0; i < headingBound; i++ {
		if strings.Contains(strings.ToLower(lines[i]), "agenda") {
			start = i
			break
		}
	}

	end := min(len(lines), start+tocWindowLines)

	var toc []string
	for _, line := range lines[start:end] {
		if len(line) < 6 || !dottedItemRe.MatchString(line) {
			continue
		}

		cleaned := strings.TrimSpace(dotLeaderRe.ReplaceAllString(line, ""))

		if isAllCaps(cleaned) {
			continue
		}
		low := strings.ToLower(cleaned)
		if matchesBoilerplate(low) {
			continue
		}

		title := titlePart(cleaned)
		if !hasLowercase(title) {
			continue
		}
		if len(strings.Fields(title)) < 2 {
			continue
		}

		if len(cleaned) >= tocMinLineLen && len(cleaned) <= tocMaxLineLen {
			toc = append(toc, cleaned)
		}
	}
	return toc
}

// RefineTOCLines drops standing items and container categories from
// extracted TOC lines, applying the per-source skip phrases
func RefineTOCLines(sourceName string, lines []string) []string {
	if len(lines) == 0 {
		return nil
	}

	var skips []string
	for _, s := range sourceStandingSkips[sourceName] {
		skips = append(skips, strings.ToLower(s))
	}

	var out []string
	for _, line := range lines {
		low := strings.ToLower(line)
		if matchesBoilerplate(low) {
			continue
		}
		if containsAny(low, skips) {
			continue
		}

		title := titlePart(line)
		words := strings.Fields(title)
		if len(words) < 2 {
			continue
		}
		if len(title) > 8 && isAllCaps(title) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// titlePart returns the text after the leading numbering token
func titlePart(line string) string {
	fields := strings.SplitN(line, " ", 2)
	title := line
	if len(fields) == 2 {
		title = fields[1]
	}
	return strings.TrimSpace(leadingDashRe.ReplaceAllString(strings.TrimSpace(title), ""))
}

func matchesBoilerplate(low string) bool {
	for _, phrase := range boilerplatePhrases {
		if strings.HasPrefix(low, phrase) || strings.Contains(low, " "+phrase) {
			return true
		}
	}
	return false
}

func containsAny(low string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(low, p) {
			return true
		}
	}
	return false
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

func hasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
