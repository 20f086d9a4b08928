package summarize

import (
	"os"
	"regexp"
	"strings"
)

// CoreTag always opens the hashtag set
const CoreTag = "#VicCouncils"

// Second-core fillers used when no topic was inferred. Overridable via
// CORE_SECOND_TAG but restricted to this set.
const (
	secondTagDefault = "#OpenGovAU"
	secondTagAlt     = "#LocalGov"
)

const maxTopics = 2

// topicRule maps a hashtag to the patterns that trigger it
type topicRule struct {
	tag      string
	patterns []*regexp.Regexp
}

// topicTable is scanned in order: earlier entries win when more than
// two topics match. Keep it as data, not logic, so tuning never needs a
// code change.
var topicTable = []topicRule{
	{"#Budget", compileAll(`\bbudget\b`, `financial plan`, `annual budget`, `long[-\s]?term financial`, `capital works`)},
	{"#Rates", compileAll(`\brates?\b`, `revenue & rating`, `revenue and rating`, `rating strategy`)},
	{"#Planning", compileAll(`planning scheme`, `amendment\s+c\d+`, `\bpermit\b`, `\bvcat\b`)},
	{"#Environment", compileAll(`climate`, `sustainab`, `net zero`, `emission`, `tree`, `waste`, `recycling`)},
	{"#Transport", compileAll(`parking`, `road`, `bike|bicycle|cycling`, `speed`, `tram|bus`)},
	{"#Tenders", compileAll(`contract`, `procure`, `tender`, `award(ed)?\b`)},
	{"#Community", compileAll(`community`, `consultation`, `engagement`, `library`, `facility`)},
	{"#Policy", compileAll(`policy`, `local law`, `governance`, `audit`, `risk`, `ceo employment`)},
	{"#Housing", compileAll(`housing`, `affordable`, `social housing`)},
}

// sourceTags maps known source names (full and truncated) to their tag
var sourceTags = map[string]string{
	"City of Melbourne":           "#Melbourne",
	"Melbourne":                   "#Melbourne",
	"Darebin City Council":        "#Darebin",
	"Darebin":                     "#Darebin",
	"Hobsons Bay City Council":    "#HobsonsBay",
	"Hobsons Bay":                 "#HobsonsBay",
	"Maribyrnong City Council":    "#Maribyrnong",
	"Maribyrnong":                 "#Maribyrnong",
	"Merri-bek City Council":      "#MerriBek",
	"Merri-bek":                   "#MerriBek",
	"Moonee Valley City Council":  "#MooneeValley",
	"Moonee Valley":               "#MooneeValley",
	"Port Phillip City Council":   "#PortPhillip",
	"Port Phillip":                "#PortPhillip",
	"Stonnington City Council":    "#Stonnington",
	"Stonnington":                 "#Stonnington",
	"Yarra City Council":          "#Yarra",
	"Yarra":                       "#Yarra",
}

// genericNameTokens never become a derived source tag
var genericNameTokens = map[string]struct{}{
	"city": {}, "council": {}, "shire": {}, "rural": {}, "of": {},
}

var nameTokenRe = regexp.MustCompile(`[^A-Za-z]+`)

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(`(?i)` + p)
	}
	return res
}

// InferTopics returns up to two topical hashtags for a piece of text,
// in the topicTable's priority order
func InferTopics(text string) []string {
	topics := make([]string, 0, maxTopics)
	for _, rule := range topicTable {
		for _, re := range rule.patterns {
			if re.MatchString(text) {
				topics = append(topics, rule.tag)
				break
			}
		}
		if len(topics) >= maxTopics {
			break
		}
	}
	return topics
}

// ChooseHashtags composes up to three hashtags: the core tag, a
// source-identifying tag, then the top topic or a second-core filler.
// The result is deterministic for a given source/topic pair and env.
func ChooseHashtags(sourceName string, topics []string) []string {
	tags := []string{CoreTag}

	sourceTag := sourceTags[sourceName]
	if sourceTag == "" {
		// Names sometimes carry a parenthetical suffix, e.g. "Yarra (CEO report)"
		base, _, _ := strings.Cut(sourceName, " (")
		sourceTag = sourceTags[base]
	}
	if sourceTag == "" {
		sourceTag = derivedSourceTag(sourceName)
	}
	if sourceTag != "" {
		tags = append(tags, sourceTag)
	}

	second := secondCoreTag()
	if len(topics) > 0 {
		top := topics[0]
		if !contains(tags, top) && top != secondTagDefault && top != secondTagAlt && top != CoreTag {
			tags = append(tags, top)
		} else if !contains(tags, second) {
			tags = append(tags, second)
		}
	} else if !contains(tags, second) {
		tags = append(tags, second)
	}

	if len(tags) > 3 {
		tags = tags[:3]
	}
	return tags
}

// derivedSourceTag builds a tag from the source name itself: the last
// name token of at least four letters that is not a generic word
func derivedSourceTag(sourceName string) string {
	tokens := nameTokenRe.Split(sourceName, -1)
	filtered := tokens[:0]
	for _, tok := range tokens {
		if tok != "" {
			filtered = append(filtered, tok)
		}
	}
	if len(filtered) == 0 {
		return ""
	}
	for i := len(filtered) - 1; i >= 0; i-- {
		tok := filtered[i]
		if _, generic := genericNameTokens[strings.ToLower(tok)]; !generic && len(tok) >= 4 {
			return "#" + tok
		}
	}
	return "#" + filtered[len(filtered)-1]
}

func secondCoreTag() string {
	if v := os.Getenv("CORE_SECOND_TAG"); v == secondTagAlt || v == secondTagDefault {
		return v
	}
	return secondTagDefault
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
