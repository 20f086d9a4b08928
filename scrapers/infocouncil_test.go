package scrapers

import (
	"testing"

	"councilbot/types"
)

func TestParseInfoCouncilFilename(t *testing.T) {
	cases := []struct {
		url      string
		wantType string
		wantDate string
	}{
		{"https://darebin.infocouncil.biz/Open/2025/08/CO_26082025_AGN_AT.PDF", types.DocTypeAgenda, "2025-08-26"},
		{"https://darebin.infocouncil.biz/Open/2025/07/CO_15072025_MIN.PDF", types.DocTypeMinutes, "2025-07-15"},
		{"https://example.infocouncil.biz/Open/2025/08/CO_99992025_AGN.PDF", types.DocTypeAgenda, ""},
		{"https://example.infocouncil.biz/Open/2025/08/summary.pdf", "", ""},
	}

	for _, tc := range cases {
		docType, isoDate := ParseInfoCouncilFilename(tc.url)
		if docType != tc.wantType || isoDate != tc.wantDate {
			t.Errorf("ParseInfoCouncilFilename(%q) = (%q, %q), want (%q, %q)",
				tc.url, docType, isoDate, tc.wantType, tc.wantDate)
		}
	}
}

func TestExtractPDFLinks(t *testing.T) {
	body := `<html><body>
		<a href="CO_26082025_AGN_AT.PDF">Agenda</a>
		<a href="/Open/2025/08/CO_12082025_MIN.PDF">Minutes</a>
		<a href="https://other.host/doc.pdf">External</a>
		<a href="notes.txt">Not a PDF</a>
	</body></html>`

	links := extractPDFLinks(body, "https://darebin.infocouncil.biz", "2025/08")

	want := []string{
		"https://darebin.infocouncil.biz/Open/2025/08/CO_26082025_AGN_AT.PDF",
		"https://darebin.infocouncil.biz/Open/2025/08/CO_12082025_MIN.PDF",
		"https://other.host/doc.pdf",
	}
	if len(links) != len(want) {
		t.Fatalf("got %d links, want %d: %v", len(links), len(want), links)
	}
	for i, w := range want {
		if links[i] != w {
			t.Errorf("link[%d] = %q, want %q", i, links[i], w)
		}
	}
}
