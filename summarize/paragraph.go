package summarize

import (
	"regexp"
	"strings"
)

var numberingTokenRe = regexp.MustCompile(`^(?i)(Item|\d+(\.\d+)*\.?)$`)

const (
	// summaryLabel prefixes every reply paragraph
	summaryLabel = "Notable items: "

	// maxPhraseWords caps each packed phrase
	maxPhraseWords = 12

	phraseEllipsis = "…"
)

// DefaultMaxPhrases bounds how many bullets a summary will pack
const DefaultMaxPhrases = 6

// BuildSummary packs the highest-value extracted lines into one reply
// paragraph. Lines scoring at least minScore are preferred; when none
// qualify the top candidates are used anyway, so a document with any
// candidate lines never yields an empty summary. Returns "" only when
// nothing can be packed at all.
func BuildSummary(sourceName, text string, lines []string, minScore, maxPhrases, maxChars int) string {
	if lines == nil {
		for _, l := range strings.Split(text, "\n") {
			l = strings.TrimSpace(l)
			if len(l) >= 10 && len(l) <= candidateMaxLen {
				lines = append(lines, l)
			}
		}
	}

	lines = RefineTOCLines(sourceName, lines)
	if len(lines) == 0 {
		return ""
	}

	candidates := scoreCandidates(lines)
	selected := candidates[:0:0]
	for _, c := range candidates {
		if c.score >= minScore {
			selected = append(selected, c)
		}
	}
	if len(selected) == 0 {
		selected = candidates
		if len(selected) > maxPhrases {
			selected = selected[:maxPhrases]
		}
	}

	phrases := make([]string, 0, len(selected))
	for _, c := range selected {
		phrases = append(phrases, phraseFromLine(c.text))
	}

	out := summaryLabel
	taken := 0
	for i, phrase := range phrases {
		if i >= maxPhrases {
			break
		}
		sep := "; "
		if taken == 0 {
			sep = ""
		}
		if runeLen(out)+runeLen(sep)+runeLen(phrase) > maxChars {
			break
		}
		out += sep + phrase
		taken++
	}
	if taken == 0 {
		return ""
	}
	return out
}

// phraseFromLine strips any leading numbering and caps phrase length
func phraseFromLine(line string) string {
	phrase := line
	if fields := strings.SplitN(line, " ", 2); len(fields) == 2 && numberingTokenRe.MatchString(fields[0]) {
		phrase = strings.TrimSpace(leadingDashRe.ReplaceAllString(fields[1], ""))
	}
	phrase = strings.Join(strings.Fields(phrase), " ")
	words := strings.Fields(phrase)
	if len(words) > maxPhraseWords {
		phrase = strings.Join(words[:maxPhraseWords], " ") + phraseEllipsis
	}
	return phrase
}
