package summarize

import (
	"regexp"
	"sort"
	"strings"
)

const (
	candidateMinLen = 20
	candidateMaxLen = 200

	bulletMaxLen = 180
)

// actionVerbs signal a decision item rather than background text
var actionVerbs = []string{
	"adopt", "endorse", "approve", "resolve", "consider", "exhibit", "award", "amend",
}

var (
	moneyRe     = regexp.MustCompile(`(?i)\$\s?\d[\d,]*(\.\d+)?\b|\b\d+(\.\d+)?\s*(million|billion)\b`)
	amendmentRe = regexp.MustCompile(`(?i)amendment\s+C\d+`)

	// Unlikely in released public documents, but filtered defensively
	confidentialRe = regexp.MustCompile(`(?i)\bconfidential\b|\bin camera\b|\bclosed session\b|\bconfidential information\b|\blegal advice\b|\blegal professional privilege\b|\bprivileged\b|\bceo employment\b|\bpersonnel matter\b|\bindustrial\b|\bsecurity\b`)

	emailRe = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?61\s?|0)(\d\s?){8,10}`)

	leadingNumberingRe = regexp.MustCompile(`(?i)^(Item\s+\d+\s*[-–:]\s*|\d+(\.\d+)*\s*[-–:\)]\s*)`)
	whitespaceRe       = regexp.MustCompile(`\s+`)
	sentenceSplitRe    = regexp.MustCompile(`[.!?]\s+`)
)

type scoredLine struct {
	score int
	text  string
}

// ScoreLine computes the notability score for a single line: decision
// verbs and money amounts weigh +2, planning-amendment codes +3, each
// matched topic +1, and a mention of "council" +1.
func ScoreLine(line string) int {
	low := strings.ToLower(line)
	score := 0
	for _, v := range actionVerbs {
		if strings.Contains(low, v) {
			score += 2
			break
		}
	}
	if moneyRe.MatchString(line) {
		score += 2
	}
	if amendmentRe.MatchString(line) {
		score += 3
	}
	score += len(InferTopics(line))
	if strings.Contains(low, "council") {
		score++
	}
	return score
}

// cleanLine collapses whitespace and strips leading numbering tokens
func cleanLine(line string) string {
	line = strings.TrimSpace(whitespaceRe.ReplaceAllString(line, " "))
	return strings.TrimSpace(leadingNumberingRe.ReplaceAllString(line, ""))
}

// scoreCandidates cleans, redacts, deduplicates and ranks lines.
// Anything matching a confidentiality marker is dropped outright.
// Results sort by score descending, then length ascending: concise
// high-value items first.
func scoreCandidates(lines []string) []scoredLine {
	var candidates []scoredLine
	seen := make(map[string]struct{})

	for _, line := range lines {
		score := ScoreLine(line)
		if score <= 0 {
			continue
		}
		cleaned := cleanLine(line)
		if cleaned == "" {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}

		if runes := []rune(cleaned); len(runes) > bulletMaxLen {
			cleaned = string(runes[:bulletMaxLen-3]) + "..."
		}
		cleaned = emailRe.ReplaceAllString(cleaned, "[redacted email]")
		cleaned = phoneRe.ReplaceAllString(cleaned, "[redacted phone]")

		if confidentialRe.MatchString(cleaned) {
			continue
		}
		candidates = append(candidates, scoredLine{score: score, text: cleaned})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return len(candidates[i].text) < len(candidates[j].text)
	})
	return candidates
}

// candidateLinesFromText treats every line of plausible length as a candidate
func candidateLinesFromText(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if len(l) >= candidateMinLen && len(l) <= candidateMaxLen {
			lines = append(lines, l)
		}
	}
	return lines
}

// ExtractKeyBullets returns up to limit concise bullets from text, or
// from the provided lines when non-nil. When scoring yields nothing it
// falls back to the first reasonable sentence of the text, and to an
// empty slice if none qualifies.
func ExtractKeyBullets(text string, limit int, lines []string) []string {
	if lines == nil {
		lines = candidateLinesFromText(text)
	}
	candidates := scoreCandidates(lines)
	if len(candidates) == 0 {
		for _, s := range sentenceSplitRe.Split(text, -1) {
			s = strings.TrimSpace(s)
			if len(s) >= 30 && len(s) <= bulletMaxLen {
				return []string{s}
			}
		}
		return nil
	}

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	bullets := make([]string, len(candidates))
	for i, c := range candidates {
		bullets[i] = c.text
	}
	return bullets
}
