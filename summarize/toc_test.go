package summarize

import (
	"strings"
	"testing"
)

const sampleTOC = `Ordinary Council Meeting
Agenda
1.1 Apologies ........................ 3
2.1 Confirmation of Minutes .......... 4
12 A VIBRANT COMMUNITY
12.1 Community Grants Program 2025-26 ........ 15
12.2 Amendment C219 Planning Scheme Review ........ 22
13.4 Award of Contract 2025-18 Road Resurfacing $4.2 million ........ 31
NOTES
`

func TestExtractTOCLinesKeepsDottedItems(t *testing.T) {
	lines := ExtractTOCLines(sampleTOC)
	joined := strings.Join(lines, "\n")

	for _, want := range []string{
		"12.1 Community Grants Program 2025-26",
		"12.2 Amendment C219 Planning Scheme Review",
		"13.4 Award of Contract 2025-18 Road Resurfacing $4.2 million",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in extracted lines, got:\n%s", want, joined)
		}
	}
}

func TestExtractTOCLinesDropsBoilerplate(t *testing.T) {
	lines := ExtractTOCLines(sampleTOC)
	for _, line := range lines {
		low := strings.ToLower(line)
		if strings.Contains(low, "apologies") || strings.Contains(low, "confirmation of minutes") {
			t.Errorf("boilerplate line leaked through: %q", line)
		}
	}
}

func TestExtractTOCLinesDropsUndottedSectionHeaders(t *testing.T) {
	lines := ExtractTOCLines(sampleTOC)
	for _, line := range lines {
		if strings.Contains(line, "VIBRANT") {
			t.Errorf("top-level section header should be excluded: %q", line)
		}
	}
}

func TestExtractTOCLinesStripsDotLeaders(t *testing.T) {
	lines := ExtractTOCLines(sampleTOC)
	for _, line := range lines {
		if strings.Contains(line, "....") {
			t.Errorf("dot leaders not stripped: %q", line)
		}
	}
}

func TestExtractTOCLinesEmptyText(t *testing.T) {
	if lines := ExtractTOCLines(""); len(lines) != 0 {
		t.Errorf("empty text should yield no lines, got %v", lines)
	}
}

func TestRefineTOCLinesAppliesStandingSkips(t *testing.T) {
	lines := []string{
		"12.1 An Engaged and Empowered Community",
		"12.2 Proposed Library Upgrade Works",
	}
	out := RefineTOCLines("Port Phillip City Council", lines)
	if len(out) != 1 || out[0] != "12.2 Proposed Library Upgrade Works" {
		t.Errorf("standing pillar heading should be removed, got %v", out)
	}

	// Sources without a standing-skip table keep both lines
	out = RefineTOCLines("Darebin City Council", lines)
	if len(out) != 2 {
		t.Errorf("no skips configured for this source, got %v", out)
	}
}

func TestRefineTOCLinesDropsShortTitles(t *testing.T) {
	out := RefineTOCLines("Example Council", []string{"12.1 Sustainability"})
	if len(out) != 0 {
		t.Errorf("single-word titles are category headings, got %v", out)
	}
}
