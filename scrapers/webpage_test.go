package scrapers

import (
	"strings"
	"testing"

	"councilbot/types"
)

const meetingsPageHTML = `<html><body>
<h1>Council meeting agendas and minutes</h1>
<ul>
  <li>Council Meeting 26 August 2025
    <a href="/files/agenda-26aug.pdf">Agenda (PDF, 4.2 MB)</a>
  </li>
  <li>Council Meeting 12 August 2025
    <a href="/files/minutes-12aug.pdf">Minutes (PDF, 1.1 MB)</a>
  </li>
</ul>
<table>
  <tr><td>5 August 2025</td><td><a href="https://cdn.example.com/special-agenda.pdf">Agenda</a></td></tr>
</table>
<a href="/contact">Contact us</a>
<a href="/files/budget.pdf">Budget overview</a>
</body></html>`

func testWebpageScraper() *WebpageScraper {
	return &WebpageScraper{src: Source{
		ID:   "example",
		Name: "Example City Council",
		Kind: "webpage",
		URL:  "https://www.example.vic.gov.au/meetings",
	}}
}

func TestParsePageFindsDocuments(t *testing.T) {
	docs, err := testWebpageScraper().parsePage(strings.NewReader(meetingsPageHTML))
	if err != nil {
		t.Fatalf("parsePage: %v", err)
	}

	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3: %+v", len(docs), docs)
	}

	byURL := make(map[string]types.MeetingDocument)
	for _, d := range docs {
		byURL[d.URL] = d
	}

	agenda, ok := byURL["https://www.example.vic.gov.au/files/agenda-26aug.pdf"]
	if !ok {
		t.Fatal("relative agenda link was not resolved against the page URL")
	}
	if agenda.DocumentType != types.DocTypeAgenda {
		t.Errorf("agenda classified as %q", agenda.DocumentType)
	}
	if agenda.Date != "2025-08-26" {
		t.Errorf("agenda date = %q, want 2025-08-26 from the list item text", agenda.Date)
	}
	if strings.Contains(agenda.Title, "MB") {
		t.Errorf("file size note not stripped from title: %q", agenda.Title)
	}

	minutes := byURL["https://www.example.vic.gov.au/files/minutes-12aug.pdf"]
	if minutes.DocumentType != types.DocTypeMinutes {
		t.Errorf("minutes classified as %q", minutes.DocumentType)
	}

	tableAgenda, ok := byURL["https://cdn.example.com/special-agenda.pdf"]
	if !ok {
		t.Fatal("table row agenda missing")
	}
	if tableAgenda.Date != "2025-08-05" {
		t.Errorf("table agenda date = %q, want date from the sibling cell", tableAgenda.Date)
	}
}

func TestParsePageIgnoresNonMeetingPDFs(t *testing.T) {
	docs, err := testWebpageScraper().parsePage(strings.NewReader(meetingsPageHTML))
	if err != nil {
		t.Fatalf("parsePage: %v", err)
	}
	for _, d := range docs {
		if strings.Contains(d.URL, "budget.pdf") {
			t.Errorf("PDF without agenda/minutes context should be skipped: %q", d.URL)
		}
	}
}

func TestParsePageSetsSourceFields(t *testing.T) {
	docs, err := testWebpageScraper().parsePage(strings.NewReader(meetingsPageHTML))
	if err != nil {
		t.Fatalf("parsePage: %v", err)
	}
	for _, d := range docs {
		if d.SourceID != "example" || d.SourceName != "Example City Council" {
			t.Errorf("source fields not set: %+v", d)
		}
		if d.MeetingType != "council" {
			t.Errorf("meeting type default = %q, want council", d.MeetingType)
		}
		if d.WebpageURL != "https://www.example.vic.gov.au/meetings" {
			t.Errorf("webpage url = %q", d.WebpageURL)
		}
	}
}
